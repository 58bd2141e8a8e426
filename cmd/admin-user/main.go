package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scanhub.backend/internal/config"
	"scanhub.backend/internal/domain/entities"
	"scanhub.backend/internal/infrastructure/repositories"
	"scanhub.backend/internal/usecases"
)

// admin-user bootstraps the first admin account so a fresh deployment
// can log in before any users exist.

var openAdminUserDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false, TranslateError: true})
}

type adminUserRuntime interface {
	CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
}

type adminUserDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (adminUserRuntime, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultAdminUserDeps() adminUserDeps {
	return adminUserDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (adminUserRuntime, io.Closer, error) {
			db, err := openAdminUserDB(cfg.Database.URL())
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := db.DB()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			userRepo := repositories.NewUserRepository(db)
			roleRepo := repositories.NewRoleRepository(db)
			return usecases.NewUserUsecase(userRepo, roleRepo), sqlDB, nil
		},
		out: os.Stdout,
	}
}

func runAdminUser(args []string, deps adminUserDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultAdminUserDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("admin-user", flag.ContinueOnError)
	usernameFlag := fs.String("username", "", "admin username (required)")
	emailFlag := fs.String("email", "", "admin email (required)")
	passwordFlag := fs.String("password", "", "admin password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *usernameFlag == "" || *emailFlag == "" || *passwordFlag == "" {
		return fmt.Errorf("--username, --email and --password are required")
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	user, err := runtime.CreateUser(context.Background(), &entities.CreateUserInput{
		Username: *usernameFlag,
		Email:    *emailFlag,
		Password: *passwordFlag,
		Roles:    []string{entities.AdminRoleName},
	})
	if err != nil {
		return fmt.Errorf("failed creating admin user: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Created admin user")
	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", user.ID.String())
	_, _ = fmt.Fprintf(deps.out, "username=%s\n", user.Username)
	_, _ = fmt.Fprintf(deps.out, "roles=%v\n", user.RoleNames())
	return nil
}

func main() {
	if err := runAdminUser(os.Args[1:], defaultAdminUserDeps()); err != nil {
		log.Fatal(err)
	}
}
