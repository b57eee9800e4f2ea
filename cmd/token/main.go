// Command token issues a bearer token accepted by the labels server.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-label-keeper/internal/config"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/utils"
)

func main() {
	log := logger.NewLogger("labels-token", "info")

	cfg, err := config.GetTokenConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, cfg.UserID, cfg.App.TokenDuration, cfg.App.TokenSignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating token")
	}

	fmt.Println(token.SignedString)
}
