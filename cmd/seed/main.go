package main

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/drivers/database"
	"clinix-service/internal/app/drivers/logger"
	"clinix-service/internal/app/models"
	"clinix-service/internal/app/services/core/users"
	"clinix-service/internal/app/services/shared/redis"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/utils"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultDoctorPassword = "password123"

var defaultDoctors = []models.User{
	{Name: "Dr. Arjun", Email: "arjun@clinix.com", Role: constvars.RoleDoctor, Specialization: "Cardiology"},
	{Name: "Dr. Neha", Email: "neha@clinix.com", Role: constvars.RoleDoctor, Specialization: "Dermatology"},
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	err := run(driverConfig, log)
	if err != nil {
		log.Errorf("Seeding failed: %v", err)
		os.Exit(1)
	}
}

// run owns every connection; its defers complete before main exits.
func run(driverConfig *config.DriverConfig, log *logrus.Logger) error {
	mongoDB := database.NewMongoDB(driverConfig)
	defer func() {
		_ = mongoDB.Client().Disconnect(context.Background())
	}()

	redisClient := database.NewRedisClient(driverConfig)
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	userRepository := users.NewUserMongoRepository(mongoDB)
	err := userRepository.EnsureIndexes(ctx)
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}

	created, err := seed(ctx, log, userRepository, redis.NewRedisRepository(redisClient), seedUsersFromEnv(log))
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"created": created}).Info("Seeding finished")
	return nil
}

func seedUsersFromEnv(log *logrus.Logger) []seedUser {
	seedUsers := make([]seedUser, 0, len(defaultDoctors)+1)
	for _, doctor := range defaultDoctors {
		seedUsers = append(seedUsers, seedUser{user: doctor, password: defaultDoctorPassword})
	}

	adminEmail := utils.NormalizeEmail(utils.GetEnvString("SEED_ADMIN_EMAIL", ""))
	adminPassword := utils.GetEnvString("SEED_ADMIN_PASSWORD", "")
	if adminEmail == "" || adminPassword == "" {
		log.Info("SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set, skipping admin account")
		return seedUsers
	}
	return append(seedUsers, seedUser{
		user:     models.User{Name: "Administrator", Email: adminEmail, Role: constvars.RoleAdmin},
		password: adminPassword,
	})
}

type userStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, userModel *models.User) (string, error)
}

type directoryCache interface {
	Delete(ctx context.Context, key string) error
}

// seed applies every seed user and drops the cached doctor directory when a
// doctor was added, the same way registration does.
func seed(ctx context.Context, log *logrus.Logger, store userStore, cache directoryCache, seedUsers []seedUser) (int, error) {
	created := 0
	doctorAdded := false
	for _, s := range seedUsers {
		ok, err := s.apply(ctx, log, store)
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", s.user.Email, err)
		}
		if ok {
			created++
			doctorAdded = doctorAdded || s.user.Role == constvars.RoleDoctor
		}
	}

	if doctorAdded {
		err := cache.Delete(ctx, constvars.CacheKeyDoctorDirectory)
		if err != nil {
			log.WithError(err).Warn("Failed to invalidate the doctor directory cache")
		}
	}
	return created, nil
}

type seedUser struct {
	user     models.User
	password string
}

// apply creates the user unless the email is already registered.
func (s seedUser) apply(ctx context.Context, log *logrus.Logger, store userStore) (bool, error) {
	existing, err := store.FindByEmail(ctx, s.user.Email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		log.WithField("email", s.user.Email).Info("User already exists, skipping")
		return false, nil
	}

	hashedPassword, err := utils.HashPassword(s.password)
	if err != nil {
		return false, err
	}

	user := s.user
	user.Password = hashedPassword
	user.SetCreatedAtUpdatedAt()
	_, err = store.CreateUser(ctx, &user)
	if err != nil {
		return false, err
	}
	return true, nil
}
