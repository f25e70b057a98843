// Package report assembles Official Duty lists: participants grouped by
// semester and branch, one bordered table and signature line per group.
package report

import (
	"fmt"

	"odgen/pkg/roster"

	"go.uber.org/zap"
)

// Generator turns roster records into a .docx report. A Generator holds no
// per-call state and may be shared.
type Generator struct {
	labels Labels
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLabels overrides the degree prefix and signature roles.
func WithLabels(l Labels) Option {
	return func(g *Generator) {
		if l.DegreePrefix != "" {
			g.labels.DegreePrefix = l.DegreePrefix
		}
		if len(l.SignatureRoles) > 0 {
			g.labels.SignatureRoles = append([]string(nil), l.SignatureRoles...)
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator returns a Generator using DefaultLabels unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		labels: DefaultLabels(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Build organizes records and builds one section per group, in group order.
// An empty roster yields no sections.
func (g *Generator) Build(records []roster.Record) ([]Section, error) {
	groups, err := Organize(records)
	if err != nil {
		return nil, err
	}

	sections := make([]Section, 0, len(groups))
	for _, grp := range groups {
		s := BuildSection(grp, g.labels)
		if !s.Year.Known() {
			g.logger.Warn("semester outside 1-8, year left unknown",
				zap.Int("semester", grp.Key.Semester),
				zap.String("branch", grp.Key.Branch))
		}
		sections = append(sections, s)
	}

	g.logger.Debug("organized roster",
		zap.Int("records", len(records)),
		zap.Int("sections", len(sections)))

	return sections, nil
}

// Generate builds the report and serializes it. Identical input produces
// identical bytes.
func (g *Generator) Generate(records []roster.Record) ([]byte, error) {
	sections, err := g.Build(records)
	if err != nil {
		return nil, err
	}

	out, err := Render(sections).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}

	g.logger.Debug("report serialized", zap.Int("bytes", len(out)))
	return out, nil
}

// Generate is NewGenerator().Generate.
func Generate(records []roster.Record) ([]byte, error) {
	return NewGenerator().Generate(records)
}
