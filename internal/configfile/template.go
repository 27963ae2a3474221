package configfile

import (
	"strings"

	"github.com/vtaptools/vtapcfg/models"
)

// passesTemplate is the fixed Jinja2 loop block substituted for the VAS and
// Smart Tap sections in template mode. A downstream templating pass renders
// it with a `passes` variable whose items expose `slot`, `apple.merchant_id`,
// `apple.merchant_url`, `google.collector_id` and `google.key_version`.
const passesTemplate = `; === MOBILE WALLET PASSES ===
; (Rendered by Jinja2 - passes variable required)
{% for passinfo in passes %}
{% if passinfo.apple %}
VAS{{ passinfo.slot }}MerchantID={{ passinfo.apple.merchant_id }}
VAS{{ passinfo.slot }}KeySlot={{ passinfo.slot }}
{% if passinfo.apple.merchant_url -%}
VAS{{ passinfo.slot }}MerchantURL={{ passinfo.apple.merchant_url }}
{% endif -%}
{% endif %}
{% if passinfo.google %}
ST{{ passinfo.slot }}CollectorID={{ passinfo.google.collector_id }}
ST{{ passinfo.slot }}KeySlot={{ passinfo.slot }}
{% if passinfo.google.key_version is defined -%}
ST{{ passinfo.slot }}KeyVersion={{ passinfo.google.key_version }}
{% endif -%}
{% endif %}
{% endfor %}
`

// GenerateTemplate renders cfg as a config.txt template: the concrete VAS
// and Smart Tap lines are replaced by the fixed loop placeholder, while the
// static sections are emitted exactly as [Generate] would. The placeholder
// block always precedes the static block.
//
// Use this when the passes section is produced by an external data source
// (database, API) through a separate templating pass that this package does
// not perform.
func GenerateTemplate(cfg *models.Config, comment string) string {
	lines := make([]string, 0, 16)
	lines = append(lines, Header)

	if comment != "" {
		lines = append(lines, "; "+comment)
	}

	lines = append(lines, passesTemplate)
	lines = append(lines, "; === STATIC CONFIGURATION ===")
	lines = append(lines, staticLines(cfg)...)

	return strings.Join(lines, "\n")
}
