package protogen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/KotFed0t/invest_contracts/config"
	"github.com/KotFed0t/invest_contracts/utils"
)

var ErrMissingSchema = errors.New("schema file not found")

// Files is the fixed set of broker schemas, relative to the include root.
var Files = []string{
	"common.proto",
	"instruments.proto",
	"marketdata.proto",
	"operations.proto",
	"orders.proto",
	"sandbox.proto",
	"stoporders.proto",
	"users.proto",
}

// Args builds the protoc argv. Only message types are generated, no gRPC server or client code.
func Args(cfg config.Protogen) []string {
	args := []string{
		"--proto_path=" + cfg.IncludeRoot,
		"--go_out=" + cfg.OutDir,
		"--go_opt=paths=source_relative",
	}
	for _, f := range Files {
		args = append(args, fmt.Sprintf("--go_opt=M%s=%s", f, cfg.GoPackage))
	}
	for _, f := range Files {
		args = append(args, filepath.Join(cfg.IncludeRoot, f))
	}
	return args
}

func checkSchemas(cfg config.Protogen) error {
	var missing []string
	for _, f := range Files {
		if _, err := os.Stat(filepath.Join(cfg.IncludeRoot, f)); err != nil {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w in %s: %s", ErrMissingSchema, cfg.IncludeRoot, strings.Join(missing, ", "))
	}
	return nil
}

func Run(ctx context.Context, cfg config.Protogen) error {
	const op = "protogen.Run"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := checkSchemas(cfg); err != nil {
		slog.Error("schemas are missing", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return err
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("%s: can't create out dir: %w", op, err)
	}

	args := Args(cfg)
	slog.Debug("running protoc", slog.String("op", op), slog.String("rqID", rqID), slog.String("protoc", cfg.ProtocPath), slog.Any("args", args))

	out, err := exec.CommandContext(ctx, cfg.ProtocPath, args...).CombinedOutput()
	if err != nil {
		slog.Error(
			"protoc failed",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.String("output", string(out)),
		)
		return fmt.Errorf("%s: protoc: %w", op, err)
	}

	slog.Info("protobuf bindings generated", slog.String("op", op), slog.String("rqID", rqID), slog.String("outDir", cfg.OutDir))
	return nil
}
