package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Pratyush-Px/Gatherly/config"
	"github.com/Pratyush-Px/Gatherly/internal/domain"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/logger"
	"github.com/Pratyush-Px/Gatherly/pkg/router"
	"github.com/Pratyush-Px/Gatherly/pkg/storage"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB
	storage storage.Storage

	userRepo         repository.UserRepository
	postRepo         repository.PostRepository
	postLikeRepo     repository.PostLikeRepository
	commentRepo      repository.CommentRepository
	followRepo       repository.FollowRepository
	notificationRepo repository.NotificationRepository
	fileRepo         repository.FileRepository

	authDomain         domain.AuthDomain
	userDomain         domain.UserDomain
	postDomain         domain.PostDomain
	commentDomain      domain.CommentDomain
	followDomain       domain.FollowDomain
	notificationDomain domain.NotificationDomain
	fileDomain         domain.FileDomain

	router *router.Router
	server *http.Server
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}

func parseSize(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		panic(err)
	}
	return n
}

func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "gatherly"),
			Password: getEnv("DB_PASSWORD", "gatherly"),
			Database: getEnv("DB_NAME", "gatherly"),
		},
		ApiServer: config.ServerConfigs{
			Host: getEnv("HOST", ""),
			Port: getEnv("PORT", "8080"),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token-secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: parseDuration(getEnv("TOKEN_EXPIRATION", "168h")),
			},
		},
		Storage: storage.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", "access-key"),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", "secret-key"),
			Bucket:         getEnv("STORAGE_BUCKET", "gatherly"),
			SSLDisabled:    getEnv("STORAGE_SSL_DISABLE", "true") == "true",
		},
		File: config.FileConfigs{
			MaxSize: parseSize(getEnv("MAX_UPLOAD_SIZE", "2097152")),
		},
	}
}

func (s *srv) loadLogger() {
	defaultLevel := "info"
	if s.configs.Env == "local" {
		defaultLevel = "debug"
	}

	s.logger = logger.NewLogger(logger.ParseLevel(getEnv("LOG_LEVEL", defaultLevel)))
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs.Storage)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.postRepo = repository.NewPostRepository()
	s.postLikeRepo = repository.NewPostLikeRepository()
	s.commentRepo = repository.NewCommentRepository()
	s.followRepo = repository.NewFollowRepository()
	s.notificationRepo = repository.NewNotificationRepository()
	s.fileRepo = repository.NewFileRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.postRepo, s.followRepo)
	s.postDomain = domain.NewPostDomain(s.postRepo, s.postLikeRepo, s.commentRepo, s.notificationRepo)
	s.commentDomain = domain.NewCommentDomain(s.commentRepo, s.postRepo, s.userRepo, s.notificationRepo)
	s.followDomain = domain.NewFollowDomain(s.followRepo, s.userRepo, s.notificationRepo)
	s.notificationDomain = domain.NewNotificationDomain(s.notificationRepo)
	s.fileDomain = domain.NewFileDomain(s.fileRepo, s.storage)
}
