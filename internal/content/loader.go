// Package content loads the public portfolio copy (site text, projects,
// skills, experience) from the published data directory, falling back to the
// compiled-in defaults section by section.
package content

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blitzdex27/portfolio/internal/logging"
	"github.com/blitzdex27/portfolio/internal/netx"
)

// Loader fetches content sections from <base>/<dataDir>/<section>.json.
type Loader struct {
	base    string
	dataDir string
	client  *http.Client
	timeout time.Duration
	logger  logging.Logger
}

// NewLoader returns a Loader. base is a site URL or directory; timeout bounds
// the whole Load (zero means only ctx bounds it). A nil client means
// http.DefaultClient; a nil logger discards output.
func NewLoader(base, dataDir string, client *http.Client, timeout time.Duration, logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Loader{base: base, dataDir: dataDir, client: client, timeout: timeout, logger: logger}
}

// Location returns where section s is fetched from.
func (l *Loader) Location(s Section) (string, error) {
	rel := s.File()
	if l.dataDir != "" {
		rel = l.dataDir + "/" + rel
	}
	return netx.Resolve(l.base, rel)
}

// Load fetches all sections concurrently. A section that cannot be fetched
// or decoded is replaced by its default; Load itself never fails.
func (l *Loader) Load(ctx context.Context) Content {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	var c Content
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(Sections))
	for _, s := range Sections {
		s := s
		g.Go(func() error {
			return l.loadSection(gctx, &c, s)
		})
	}
	if err := g.Wait(); err != nil {
		l.logger.Error(ctx, "default content unavailable", "error", err)
	}

	return c
}

// loadSection writes only its own field of c, so concurrent calls for
// distinct sections do not race. It fails only when the embedded default for
// s cannot be decoded.
func (l *Loader) loadSection(ctx context.Context, c *Content, s Section) error {
	loc, err := l.Location(s)
	if err == nil {
		var fetched Content
		if err = netx.GetJSON(ctx, l.client, loc, fetched.target(s)); err == nil {
			l.copySection(c, &fetched, s)
			return nil
		}
	}

	l.logger.Warn(ctx, "using default content section", "section", string(s), "source", loc, "error", err)
	return decodeDefault(c, s)
}

func (l *Loader) copySection(dst, src *Content, s Section) {
	switch s {
	case SectionSite:
		dst.Site = src.Site
	case SectionProjects:
		dst.Projects = src.Projects
	case SectionSkills:
		dst.Skills = src.Skills
	case SectionExperience:
		dst.Experience = src.Experience
	}
}
