package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"ecotrack/cmd/config"
	migration "ecotrack/cmd/database/migrate"
	"ecotrack/domain"
	"ecotrack/internal/utils"
	"ecotrack/pkg/jwt"

	"github.com/gofiber/fiber/v2/log"
)

const usage = `usage: ecotrack [command] [flags]

commands:
  serve              run the HTTP API (default)
  migrate            create the postgres store table
  digest [-window N] mail the upcoming expiry warnings
  token  [-subject S] [-ttl D]
                     print an API bearer token signed with JWT_SECRET
`

func main() {
	utils.LoadConfig()

	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	var err error
	switch command {
	case "serve":
		err = serve()
	case "migrate":
		err = migrate()
	case "digest":
		err = digest(args)
	case "token":
		err = token(args)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

func serve() error {
	store, err := config.NewStore(context.Background())
	if err != nil {
		return err
	}
	defer store.Close()

	app, err := config.NewApp(store)
	if err != nil {
		return err
	}

	port := utils.GetConfigOrDefault("APP_PORT", "8080")
	return app.Listen(":" + port)
}

func migrate() error {
	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	return migration.Migrate(db)
}

func digest(args []string) error {
	fs := flag.NewFlagSet("digest", flag.ExitOnError)
	window := fs.Int("window", domain.DefaultWarningWindowDays, "days ahead to warn about")
	_ = fs.Parse(args)

	ctx := context.Background()
	store, err := config.NewStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	services := config.NewServices(store, config.NewClock(), config.NewNotifier(), config.NewGeminiService())
	sent, err := services.Inventory.SendExpiryDigest(ctx, *window)
	if err != nil {
		return err
	}
	log.Infow("expiry digest done", "items", sent)
	return nil
}

func token(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	subject := fs.String("subject", "ecotrack-client", "token subject")
	ttl := fs.Duration("ttl", jwt.DefaultTokenTTL, "token lifetime")
	_ = fs.Parse(args)

	signed, err := jwt.NewJWTService(utils.GetConfig("JWT_SECRET")).GenerateToken(*subject, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(signed)
	return nil
}

