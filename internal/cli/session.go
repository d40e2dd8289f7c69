package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/KanekiDevPro/Trade-Size-Calculator/internal/monitoring"
	"github.com/KanekiDevPro/Trade-Size-Calculator/journal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const sessionHelp = `Session commands:
  size|stoploss|reverse|portfolio [flags]   run a calculation (see "help <command>")
  history                                   list every calculation of this session
  today                                     list calculations made today
  show <id>                                 show one calculation (an ID prefix is enough)
  export <path>                             write the history as CSV
  quit                                      leave the session
`

func newSessionCmd(rc *RootConfig) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Interactive calculator that keeps a history of results",
		Long: `Read commands from stdin, one per line, and keep every result in an
in-memory history that is discarded when the session ends.

` + sessionHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := journal.NewSQLite()
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer j.Close()

			rc.Journal = j
			rc.Metrics = monitoring.NewMetrics()
			defer func() {
				rc.Journal = nil
				rc.Metrics = nil
				rc.line = ""
			}()

			if metricsAddr != "" {
				stop, err := serveMetrics(metricsAddr, rc.Metrics, rc.Log)
				if err != nil {
					return err
				}
				defer stop()
			}

			s := &session{rc: rc, j: j, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
			return s.run(cmd.Context(), cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	return cmd
}

type session struct {
	rc     *RootConfig
	j      *journal.SQLite
	out    io.Writer
	errOut io.Writer
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(s.out, "tradesize> ")
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(sc.Text())
		if line != "" {
			quit, err := s.exec(ctx, line)
			if err != nil {
				fmt.Fprintln(s.errOut, "error:", err)
			}
			if quit {
				return nil
			}
		}
		fmt.Fprint(s.out, "tradesize> ")
	}
	fmt.Fprintln(s.out)
	return sc.Err()
}

// exec runs one line. Calculation errors are returned for display and do
// not end the session.
func (s *session) exec(ctx context.Context, line string) (bool, error) {
	args := strings.Fields(line)

	switch args[0] {
	case "quit", "exit":
		return true, nil

	case "history":
		recs, err := s.j.List()
		if err != nil {
			return false, err
		}
		fmt.Fprint(s.out, journal.FormatRecordsOrg(recs))
		return false, nil

	case "today":
		now := time.Now()
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		recs, err := s.j.ListBetween(start, start.Add(24*time.Hour))
		if err != nil {
			return false, err
		}
		fmt.Fprint(s.out, journal.FormatRecordsOrg(recs))
		return false, nil

	case "show":
		if len(args) != 2 {
			return false, errors.New("usage: show <id>")
		}
		rec, err := s.j.Get(args[1])
		if err != nil {
			return false, err
		}
		fmt.Fprint(s.out, journal.FormatRecordOrg(rec))
		return false, nil

	case "export":
		if len(args) != 2 {
			return false, errors.New("usage: export <path>")
		}
		n, err := journal.ExportCSV(s.j, args[1])
		if err != nil {
			return false, fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(s.out, "Exported %d calculations to %s\n", n, args[1])
		return false, nil

	case "help", "?":
		if len(args) == 1 {
			fmt.Fprint(s.out, sessionHelp)
			return false, nil
		}
	}

	s.rc.line = line
	defer func() { s.rc.line = "" }()

	inner := &cobra.Command{
		Use:           "tradesize",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	inner.CompletionOptions.DisableDefaultCmd = true
	inner.AddCommand(calcCommands(s.rc)...)
	inner.SetArgs(args)
	inner.SetIn(strings.NewReader(""))
	inner.SetOut(s.out)
	inner.SetErr(s.errOut)
	return false, inner.ExecuteContext(ctx)
}

// serveMetrics exposes m on addr until the returned stop func is called.
func serveMetrics(addr string, m *monitoring.Metrics, log *zap.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()
	log.Info("serving metrics", zap.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
