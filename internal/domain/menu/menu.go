package menu

// 固定メニュー。商品マスタは持たない（価格も全品共通）。
const UnitPrice int64 = 100

var Items = []string{
	"Whole Chicken",
	"Chicken Wings",
	"Chicken Thighs",
	"Chicken Breasts",
}

// メニューに載っている商品名か
func Contains(name string) bool {
	for _, it := range Items {
		if it == name {
			return true
		}
	}
	return false
}
