package main

import (
	"chickenshop/internal/config"
	"chickenshop/internal/domain/menu"
	"chickenshop/internal/domain/model"
	"chickenshop/internal/handler"
	"chickenshop/internal/infra/db"
	"chickenshop/internal/infra/mail"
	infraRepo "chickenshop/internal/infra/repository"
	"chickenshop/internal/inventory"
	"chickenshop/internal/logger"
	"chickenshop/internal/server"
	"chickenshop/internal/usecase"
	"chickenshop/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New("chickenshop-api", cfg.LogLevel)

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.PaymentNotification{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	notifRepo := infraRepo.NewPaymentNotificationGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//在庫台帳はプロセス内メモリ。メニュー全品を初期在庫で積む
	initial := make(map[string]int64, len(menu.Items))
	for _, name := range menu.Items {
		initial[name] = cfg.InitialStock
	}
	ledger := inventory.New(initial)

	//確認メール送信（SMTP）
	sender, err := mail.NewSMTPSender(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("smtp setup failed")
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator())
	cartUC := usecase.NewCartUsecase(cartRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo)
	paymentUC := usecase.NewPaymentUsecase(cfg.MerchantKey, notifRepo, ledger, sender, log)

	//Handler生成
	authH := handler.NewAuthHandler(cfg, authUC)
	storeH := handler.NewStorefrontHandler(cfg, ledger)
	cartH := handler.NewCartHandler(cfg, cartUC, orderUC)
	orderH := handler.NewOrderHandler(cfg, orderUC)
	webhookH := handler.NewWebhookHandler(paymentUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.Info().Str("addr", addr).Msg("starting server")
	if err := server.Start(addr, log, authH, storeH, cartH, orderH, webhookH); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
