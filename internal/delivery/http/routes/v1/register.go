package v1

import (
	"github.com/gofiber/fiber/v3"

	"mentor-match/internal/config"
	"mentor-match/internal/database"
	"mentor-match/internal/delivery/http/handler"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/domain/matching"
	"mentor-match/internal/pkg/jwt"
	"mentor-match/internal/repository"
	"mentor-match/internal/usecase"
	ucauth "mentor-match/internal/usecase/auth"
	"mentor-match/internal/version"
)

// Register wires repositories, usecases and handlers under /api/v1.
// Read endpoints are public; mutating collection endpoints require a
// valid access token.
func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.SearchCache, notifier usecase.ChangeNotifier) error {
	if r == nil {
		return nil
	}

	repo := repository.NewPostgresRecordRepository(db)

	mentorMatcher, err := matching.New(cfg.Match.Strategy, repo)
	if err != nil {
		return err
	}

	collectionUC := usecase.NewCollectionUsecase(repo, cache, notifier)
	matchUC := usecase.NewMatchUsecase(mentorMatcher, matching.NewResource(repo))
	aidUC := usecase.NewFinancialAidUsecase(repo)
	sentimentUC := usecase.NewSentimentUsecase()

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)
	authUC := ucauth.NewService(repo, jwtSvc)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))

	collectionHandler := handler.NewCollectionHandler(collectionUC)

	handler.NewMetaHandler(version.Version, collectionUC).RegisterRoutes(r)
	handler.NewMatchHandler(matchUC).RegisterRoutes(r)
	handler.NewFinancialAidHandler(aidUC).RegisterRoutes(r)
	handler.NewSentimentHandler(sentimentUC).RegisterRoutes(r)
	collectionHandler.RegisterReadRoutes(r)

	protected := r.Group("", authMw.Middleware())
	collectionHandler.RegisterWriteRoutes(protected)

	return nil
}
