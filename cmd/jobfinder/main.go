package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"jobfinder/config"
	"jobfinder/internal/delivery/navigation"
	"jobfinder/internal/devserver"
	"jobfinder/internal/domain/entity"
	"jobfinder/internal/infra/api"
	"jobfinder/internal/infra/auth"
	"jobfinder/internal/infra/device"
	logs "jobfinder/internal/infra/log"
	"jobfinder/internal/infra/persistence/bolt"
	"jobfinder/internal/usecase"
	"jobfinder/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			startDevServer,
			runShell,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		bolt.NewCredentialStore,
		api.NewClient,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			api.AsAuthAPI,
			api.AsTokenBinder,
			auth.NewClaimsDecoder,
			device.NewPushRegistrar,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
		),
	)
}

type devServerParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// startDevServer runs the stub backend when enabled, seeding one account of
// each role so the shell has something to log in with.
func startDevServer(params devServerParams) error {
	cfg := params.Config.DevServer
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	srv, err := devserver.NewServer(cfg, params.Logger)
	if err != nil {
		return err
	}
	if _, err := srv.SeedAccount("Demo Candidate", "candidate@example.com", "secret123", entity.RoleCandidate.String()); err != nil {
		return err
	}
	if _, err := srv.SeedAccount("Demo Employer", "employer@example.com", "secret123", entity.RoleEmployer.String()); err != nil {
		return err
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.Serve(context.Background()); err != nil {
					params.Logger.Error("Dev server stopped", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: srv.Shutdown,
	})

	return nil
}

type shellParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger  *slog.Logger
	Session usecase.SessionUsecase
}

// runShell drives the session core from stdin, rendering the navigation
// tree the way the mobile shell would mount it.
func runShell(params shellParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go shellLoop(params)

			return nil
		},
	})
}

func shellLoop(params shellParams) {
	ctx := context.Background()

	gate := navigation.NewGate(params.Logger, func(tree navigation.Tree) {
		fmt.Printf("-- mounted %s\n", tree)
	})
	defer gate.Attach(params.Session)()

	if err := params.Session.RestoreSession(ctx); err != nil {
		params.Logger.Error("Session restore failed", slog.Any("error", err))
	}

	fmt.Println("commands: login <email> <password> | token <jwt> | whoami | logout | quit")
	scanner := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); scanner.Scan(); fmt.Print("> ") {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "login":
			if len(fields) != 3 {
				fmt.Println("usage: login <email> <password>")

				continue
			}
			runLogin(ctx, params.Session, entity.PasswordCredentials{Email: fields[1], Password: fields[2]})

		case "token":
			if len(fields) != 2 {
				fmt.Println("usage: token <jwt>")

				continue
			}
			runLogin(ctx, params.Session, entity.TokenCredentials{Token: fields[1]})

		case "whoami":
			snapshot := params.Session.Snapshot()
			if !snapshot.IsAuthenticated {
				fmt.Println("not signed in")
			} else if snapshot.Account == nil {
				fmt.Println("signed in (profile not loaded)")
			} else {
				fmt.Printf("%s <%s> (%s)\n", snapshot.Account.Name, snapshot.Account.Email, snapshot.Account.Role)
			}

		case "logout":
			if err := params.Session.Logout(ctx); err != nil {
				fmt.Println("logout failed:", err)
			}

		case "quit", "exit":
			_ = params.Shutdowner.Shutdown()

			return

		default:
			fmt.Println("unknown command:", fields[0])
		}
	}

	_ = params.Shutdowner.Shutdown()
}

func runLogin(ctx context.Context, session usecase.SessionUsecase, credentials entity.Credentials) {
	account, err := session.Login(ctx, credentials)
	if err != nil {
		fmt.Println("login failed:", err)

		return
	}
	if account != nil {
		fmt.Printf("welcome, %s\n", account.Name)
	} else {
		fmt.Println("signed in")
	}
}
