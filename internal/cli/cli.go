// internal/cli/cli.go
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dalemusser/studylink/config"
	"github.com/dalemusser/studylink/db/mysql"
	"github.com/dalemusser/studylink/db/postgres"
	"github.com/dalemusser/studylink/db/sqlite"
	"github.com/dalemusser/studylink/eduemail"
	"github.com/dalemusser/studylink/imagestore"
	"github.com/dalemusser/studylink/logging"
)

// Run is the studylink CLI entrypoint. It loads config, builds the logger,
// and dispatches on the first positional argument.
//
// It returns a process exit code; callers should os.Exit(Run()).
func Run() int {
	boot := logging.BootstrapLogger()

	cfg, err := config.Load(boot)
	if err != nil {
		boot.Error("failed to load config", zap.Error(err))
		return 1
	}

	logger := logging.MustBuildLogger(cfg.LogLevel, cfg.Env)
	defer logger.Sync()

	logger.Debug("config loaded", zap.String("dump", cfg.Dump()))

	args := pflag.Args()
	if len(args) < 1 {
		usage()
		return 1
	}

	switch args[0] {
	case "store":
		return storeCmd(logger, cfg, args[1:])
	case "retrieve":
		return retrieveCmd(logger, cfg, args[1:])
	case "validate":
		return validateCmd(args[1:])
	case "init":
		return initCmd(logger, cfg)
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %q\n\n", args[0])
		usage()
		return 1
	}
}

func usage() {
	fmt.Println("studylink")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  studylink init                          create the blob table if absent")
	fmt.Println("  studylink store <name> <file>           upload a file's bytes under a name")
	fmt.Println("  studylink retrieve <name> <out-file>    fetch by name and write bytes to a file")
	fmt.Println("  studylink validate [email]              check a .edu email (reads stdin if omitted)")
	fmt.Println()
	fmt.Println("Database settings come from flags, STUDYLINK_* env vars, or a config.* file:")
	fmt.Println("  --db_driver (mysql|sqlite|postgres)  --db_dsn <dsn>  --image_table <name>")
	fmt.Println()
	fmt.Println("Example:")
	fmt.Println(`  studylink --db_driver=mysql --db_dsn="user:pass@tcp(localhost:3306)/app" store example.jpg ./example.jpg`)
}

// openStore opens one database connection scope and wraps it in a Store.
// Callers must invoke the returned closer on every exit path.
func openStore(cfg *config.Config) (*imagestore.Store, func(), error) {
	if cfg.DBDSN == "" {
		return nil, nil, fmt.Errorf("db_dsn is required (set --db_dsn or STUDYLINK_DB_DSN)")
	}

	var (
		db  *sql.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite":
		db, err = sqlite.Connect(cfg.DBDSN, cfg.DBConnectTimeout)
	case "postgres":
		db, err = postgres.Connect(cfg.DBDSN, cfg.DBConnectTimeout)
	default:
		db, err = mysql.Connect(cfg.DBDSN, cfg.DBConnectTimeout)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", imagestore.ErrConnection, err)
	}

	store := imagestore.New(db,
		imagestore.WithTable(cfg.ImageTable),
		imagestore.WithDialect(imagestore.ParseDialect(cfg.DBDriver)),
	)
	return store, func() { db.Close() }, nil
}

func initCmd(logger *zap.Logger, cfg *config.Config) int {
	store, closer, err := openStore(cfg)
	if err != nil {
		logger.Error("database connection failed", zap.Error(err))
		return 1
	}
	defer closer()

	if err := store.EnsureSchema(context.Background()); err != nil {
		logger.Error("failed to create table", zap.String("table", cfg.ImageTable), zap.Error(err))
		return 1
	}

	logger.Info("table ready", zap.String("table", cfg.ImageTable))
	fmt.Println("Table ready.")
	return 0
}

func storeCmd(logger *zap.Logger, cfg *config.Config, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: studylink store <name> <file>")
		return 1
	}
	name, path := args[0], args[1]

	store, closer, err := openStore(cfg)
	if err != nil {
		logger.Error("database connection failed", zap.Error(err))
		return 1
	}
	defer closer()

	if err := store.PutFile(context.Background(), name, path); err != nil {
		logger.Error("upload failed", zap.String("name", name), zap.String("file", path), zap.Error(err))
		return 1
	}

	logger.Info("image uploaded", zap.String("name", name), zap.String("file", path))
	fmt.Println("Image uploaded successfully.")
	return 0
}

func retrieveCmd(logger *zap.Logger, cfg *config.Config, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: studylink retrieve <name> <out-file>")
		return 1
	}
	name, path := args[0], args[1]

	store, closer, err := openStore(cfg)
	if err != nil {
		logger.Error("database connection failed", zap.Error(err))
		return 1
	}
	defer closer()

	if err := store.GetToFile(context.Background(), name, path); err != nil {
		if errors.Is(err, imagestore.ErrNotFound) {
			logger.Warn("no record with that name", zap.String("name", name))
			fmt.Fprintf(os.Stderr, "No image named %q found.\n", name)
			return 1
		}
		logger.Error("retrieve failed", zap.String("name", name), zap.String("file", path), zap.Error(err))
		return 1
	}

	logger.Info("image retrieved", zap.String("name", name), zap.String("file", path))
	fmt.Println("Image retrieved and written to file.")
	return 0
}

// validateCmd checks the given email argument, or reads one line from stdin
// when no argument is supplied. The diagnostic always goes to stdout; the
// exit code is 0 for a valid .edu address and 1 otherwise.
func validateCmd(args []string) int {
	var candidate string
	if len(args) > 0 {
		candidate = args[0]
	} else {
		fmt.Print("Enter email address: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "failed to read input:", err)
			return 1
		}
		candidate = strings.TrimSpace(line)
	}

	res := eduemail.Validate(candidate)
	fmt.Println(res.Message)
	if !res.Valid {
		return 1
	}
	return 0
}
