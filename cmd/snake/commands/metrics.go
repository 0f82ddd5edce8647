package commands

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// logMetrics writes the terminal metrics collected during the round to the
// log. There is no exporter; the log file is the only place they surface.
func logMetrics() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.WithError(err).Warn("unable to gather metrics")
		return
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "snake_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			fields := log.Fields{"metric": mf.GetName()}
			for _, l := range m.GetLabel() {
				fields[l.GetName()] = l.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				fields["value"] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				fields["count"] = m.GetHistogram().GetSampleCount()
				fields["sum"] = m.GetHistogram().GetSampleSum()
			}
			log.WithFields(fields).Info("metrics")
		}
	}
}
