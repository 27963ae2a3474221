package tui

import (
	"strings"

	"github.com/vtaptools/vtapcfg/internal/configfile"
	"github.com/vtaptools/vtapcfg/models"
)

type previewModel struct {
	template bool
	status   string
}

func (m previewModel) render(cfg *models.Config, comment string) string {
	if m.template {
		return configfile.GenerateTemplate(cfg, comment)
	}
	return configfile.Generate(cfg, comment)
}

func (m previewModel) view(cfg *models.Config, comment, outputPath string) string {
	title := "Preview"
	if m.template {
		title = "Preview (pass-upload template)"
	}

	out := strings.TrimRight(m.render(cfg, comment), "\n")
	if m.status != "" {
		out += "\n\n" + m.status
	}
	return renderPage(title, out,
		"w: write "+outputPath+" │ c: copy │ t: toggle template │ esc: back")
}
