package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/painel/painel-backend/internal/auth/repository"
	"github.com/painel/painel-backend/internal/auth/service"
	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/logger"
)

// useradd adds or replaces a dashboard user. The password is read from the
// first line of stdin.
func main() {
	username := flag.String("username", "", "login name")
	name := flag.String("name", "", "display name")
	file := flag.String("file", "", "users file (defaults to auth.users_file)")
	flag.Parse()

	log := logger.New("useradd", config.GetEnvironment())

	if strings.TrimSpace(*username) == "" {
		fmt.Fprintln(os.Stderr, "usage: useradd -username <login> [-name <display name>] < password")
		os.Exit(2)
	}

	path := *file
	if path == "" {
		cfg, err := config.Load("dashboard-service")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
		path = cfg.Auth.UsersFile
	}

	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && password == "" {
		log.Fatal().Err(err).Msg("failed to read password from stdin")
	}
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		log.Fatal().Msg("password must not be empty")
	}

	users, err := repository.OpenOrCreateUserRepository(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open users file")
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	display := *name
	if display == "" {
		display = *username
	}
	users.Upsert(repository.User{Username: strings.TrimSpace(*username), Name: display, PasswordHash: hash})

	if err := users.Save(); err != nil {
		log.Fatal().Err(err).Msg("failed to save users file")
	}
	log.Info().Str("username", *username).Str("file", path).Int("users", users.Count()).Msg("user saved")
}
