package cli

import (
	"github.com/KanekiDevPro/Trade-Size-Calculator/config"
	"github.com/KanekiDevPro/Trade-Size-Calculator/internal/monitoring"
	"github.com/KanekiDevPro/Trade-Size-Calculator/journal"
	"github.com/KanekiDevPro/Trade-Size-Calculator/report"
	"github.com/KanekiDevPro/Trade-Size-Calculator/risk"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RootConfig is shared by every sub-command. The flag fields are bound by
// the root command; the rest is filled in before a sub-command runs.
type RootConfig struct {
	ConfigPath string
	EnvFile    string
	LogLevel   string

	Cfg  *config.Config
	Log  *zap.Logger
	Calc *risk.Calculator

	// Only set while a session is running.
	Journal journal.Journal
	Metrics *monitoring.Metrics
	line    string
}

// observe logs a finished calculation and, inside a session, counts it and
// records it in the journal. g is ignored when err is set.
func (rc *RootConfig) observe(kind string, g report.Grid, err error, sizes ...decimal.Decimal) {
	code := risk.CodeOf(err)
	if err != nil {
		rc.Log.Info("calculation rejected",
			zap.String("kind", kind),
			zap.String("code", code),
			zap.Error(err),
		)
	} else {
		rc.Log.Debug("calculation done", zap.String("kind", kind), zap.Int("sizes", len(sizes)))
	}

	if rc.Metrics != nil {
		if err != nil {
			rc.Metrics.RecordError(kind, code)
		} else {
			rc.Metrics.RecordCalculation(kind)
			for _, s := range sizes {
				rc.Metrics.RecordPositionSize(kind, s.InexactFloat64())
			}
		}
	}

	if rc.Journal == nil {
		return
	}
	rec := journal.Record{Kind: kind, Input: rc.line}
	if err != nil {
		rec.Error = err.Error()
	} else {
		data, jerr := report.JSON(g)
		if jerr != nil {
			rc.Log.Warn("encode result", zap.Error(jerr))
		}
		rec.Result = string(data)
	}
	if _, jerr := rc.Journal.Record(rec); jerr != nil {
		rc.Log.Warn("journal record", zap.String("kind", kind), zap.Error(jerr))
	}
}
