package ban

import (
	"fmt"
	"net"
	"net/smtp"
	"sort"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/retail-pos/internal/config"
)

// sendMail is replaced in tests.
var sendMail = smtp.SendMail

type mailer struct {
	cfg config.AlertConfig
}

func (m mailer) enabled() bool {
	return m.cfg.SMTPServer != "" && m.cfg.To != ""
}

func (m mailer) send(subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.cfg.From, m.cfg.To, subject, body)

	var auth smtp.Auth
	if !m.cfg.AuthDisabled {
		auth = smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPServer)
	}
	addr := net.JoinHostPort(m.cfg.SMTPServer, strconv.Itoa(m.cfg.SMTPPort))
	return sendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(msg))
}

// summaryHTML renders ban counts per route and per client, busiest first.
func summaryHTML(entries []BanLogEntry) string {
	routes := map[string]int{}
	targets := map[string]int{}
	for _, e := range entries {
		routes[e.Route]++
		targets[e.Target]++
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Ban Summary</h2>")
	fmt.Fprintf(&sb, "<p>Total bans: <strong>%d</strong></p>", len(entries))
	writeCounts(&sb, "By route", routes)
	writeCounts(&sb, "By client", targets)
	return sb.String()
}

func writeCounts(sb *strings.Builder, title string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	fmt.Fprintf(sb, "<h3>%s</h3><ul>", title)
	for _, k := range keys {
		fmt.Fprintf(sb, "<li><code>%s</code>: %d</li>", k, counts[k])
	}
	sb.WriteString("</ul>")
}
