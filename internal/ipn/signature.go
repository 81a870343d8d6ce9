package ipn

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// IPNの署名フィールド名
const SignatureField = "signature"

// Signはマーチャントキーでペイロードの署名を作る。
// signature以外のフィールドを名前順に "k=v" で並べ、"&" で連結した
// 文字列のHMAC-SHA256（hex）を返す。値を含めて署名するので、
// 同じ形のペイロードを別の中身で偽造しても一致しない。
func Sign(merchantKey string, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == SignatureField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}
	canonical := strings.Join(pairs, "&")

	mac := hmac.New(sha256.New, []byte(merchantKey))
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verifyは提示された署名を定数時間で照合する
func Verify(merchantKey string, fields map[string]string, signature string) bool {
	if signature == "" {
		return false
	}
	want := Sign(merchantKey, fields)
	return hmac.Equal([]byte(want), []byte(signature))
}
