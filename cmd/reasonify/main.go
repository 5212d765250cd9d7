package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	reasonify "github.com/riverfjs/reasonify-go"
	"github.com/riverfjs/reasonify-go/internal/metrics"
	"github.com/riverfjs/reasonify-go/internal/server"
)

var (
	rootCmd = &cobra.Command{
		Use:   "reasonify",
		Short: `Extract reasoning blocks (<think>, <thinking>, ...) from model output and render them as collapsible sections.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			_ = godotenv.Load()
			return nil
		},
		SilenceUsage: true,
	}

	renderCmd = &cobra.Command{
		Use:   "render [file]",
		Short: "Render reasoning blocks from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), text, viper.GetString("format"), viper.GetBool("keep-empty"))
		},
	}

	stripCmd = &cobra.Command{
		Use:   "strip [file]",
		Short: `Remove rendered <details type="..."> blocks from a file or stdin`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			types, err := cmd.Flags().GetStringSlice("type")
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), reasonify.StripDetails(text, types...))
			return err
		},
	}

	tagsCmd = &cobra.Command{
		Use:   "tags",
		Short: "List supported reasoning marker pairs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, p := range reasonify.DefaultMarkerPairs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s ... %s\n", p.Start, p.End)
			}
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the render and strip operations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := server.DefaultConfig()
			cfg.Addr = viper.GetString("addr")
			cfg.Port = viper.GetInt("port")

			s := server.New(cfg, metrics.NewExporter(metrics.DefaultConfig()), slog.Default())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- s.Start()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					slog.Error("failed to start server", "error", err)
					return err
				}
				return nil
			case <-ctx.Done():
			}

			slog.Info("shutting down")
			if err := s.Shutdown(context.Background()); err != nil {
				slog.Error("failed to shut down server", "error", err)
				return err
			}
			return nil
		},
	}
)

func init() {
	viper.SetDefault("format", "markdown")
	viper.SetDefault("port", 28090)

	renderCmd.Flags().String("format", "markdown", `output format, can be "markdown", "html" or "json"`)
	renderCmd.Flags().Bool("keep-empty", false, "render reasoning blocks with empty content")
	stripCmd.Flags().StringSlice("type", []string{reasonify.BlockTypeReasoning}, "details type to remove (repeatable)")
	serveCmd.Flags().String("addr", "", "address of server")
	serveCmd.Flags().Int("port", 28090, "port of server")

	if err := viper.BindPFlag("format", renderCmd.Flags().Lookup("format")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("keep-empty", renderCmd.Flags().Lookup("keep-empty")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("port", serveCmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("reasonify")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(renderCmd, stripCmd, tagsCmd, serveCmd)
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func runRender(w io.Writer, text, format string, keepEmpty bool) error {
	doc, err := reasonify.Process(text, reasonify.WithKeepEmpty(keepEmpty))
	if err != nil {
		return err
	}

	switch format {
	case "markdown", "":
		_, err = fmt.Fprintln(w, doc.Text)
	case "html":
		html, herr := reasonify.ToHTML(doc.Text)
		if herr != nil {
			return herr
		}
		_, err = fmt.Fprint(w, html)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return err
	}

	slog.Debug("rendered document",
		"blocks", len(doc.Blocks),
		"total_duration", doc.TotalDuration,
		"tags", doc.StartTags())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
