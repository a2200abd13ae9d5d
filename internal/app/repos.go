package app

import (
	"gorm.io/gorm"

	"github.com/finbrief/finbrief-backend/internal/logger"
	"github.com/finbrief/finbrief-backend/internal/repos"
)

type Repos struct {
	User      repos.UserRepo
	UserToken repos.UserTokenRepo
	Watchlist repos.WatchlistRepo
	Summary   repos.SummaryRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:      repos.NewUserRepo(db, log),
		UserToken: repos.NewUserTokenRepo(db, log),
		Watchlist: repos.NewWatchlistRepo(db, log),
		Summary:   repos.NewSummaryRepo(db, log),
	}
}
