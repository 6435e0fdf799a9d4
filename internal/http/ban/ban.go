package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/retail-pos/internal/config"
	"github.com/rogerio-castellano/retail-pos/internal/logger"
)

const (
	strikeKeyPrefix = "ratelimit:strikes:"
	banKeyPrefix    = "ratelimit:ban:"
	DailyBanLogKey  = "ratelimit:banlog:daily"
)

// Guard counts rate-limit violations per client in Redis and bans clients
// that reach MaxStrikes within one ban window.
type Guard struct {
	rdb        *redis.Client
	log        *zap.Logger
	mail       mailer
	maxStrikes int
	duration   time.Duration
}

func NewGuard(rdb *redis.Client, cfg config.BanConfig) *Guard {
	return &Guard{
		rdb:        rdb,
		log:        logger.L(),
		mail:       mailer{cfg: cfg.Alert},
		maxStrikes: cfg.MaxStrikes,
		duration:   cfg.Duration,
	}
}

func (g *Guard) IsBanned(ctx context.Context, target string) (bool, error) {
	n, err := g.rdb.Exists(ctx, banKeyPrefix+target).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Strike records one violation and reports whether the target is now banned.
func (g *Guard) Strike(ctx context.Context, target, route string) (bool, error) {
	key := strikeKeyPrefix + target
	strikes, err := g.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if strikes == 1 {
		if err := g.rdb.Expire(ctx, key, g.duration).Err(); err != nil {
			g.log.Error("could not set strike expiry", zap.String("target", target), zap.Error(err))
		}
	}
	if int(strikes) < g.maxStrikes {
		return false, nil
	}

	if err := g.rdb.Set(ctx, banKeyPrefix+target, route, g.duration).Err(); err != nil {
		return false, err
	}
	if err := g.rdb.Del(ctx, key).Err(); err != nil {
		g.log.Error("could not reset strikes", zap.String("target", target), zap.Error(err))
	}

	g.log.Warn("client banned",
		zap.String("target", target),
		zap.String("route", route),
		zap.Int64("strikes", strikes),
		zap.Duration("duration", g.duration),
	)
	g.logBanEvent(ctx, target, route, int(strikes))
	g.alert("Client banned", fmt.Sprintf("<p><code>%s</code> was banned for %s after %d strikes on <code>%s</code>.</p>",
		target, g.duration, strikes, route))
	return true, nil
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

func (g *Guard) logBanEvent(ctx context.Context, target, route string, strikes int) {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    time.Now(),
	}
	data, _ := json.Marshal(entry)
	if err := g.rdb.RPush(ctx, DailyBanLogKey, data).Err(); err != nil {
		g.log.Error("could not append ban log", zap.String("target", target), zap.Error(err))
	}
}

// DailySummary drains the ban log and returns the entries recorded since the last call.
func (g *Guard) DailySummary(ctx context.Context) ([]BanLogEntry, error) {
	items, err := g.rdb.LRange(ctx, DailyBanLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read ban log: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	if err := g.rdb.Del(ctx, DailyBanLogKey).Err(); err != nil {
		g.log.Error("could not clear ban log", zap.Error(err))
	}

	entries := make([]BanLogEntry, 0, len(items))
	for _, item := range items {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (g *Guard) sendDailySummary(ctx context.Context) {
	entries, err := g.DailySummary(ctx)
	if err != nil {
		g.log.Error("ban summary failed", zap.Error(err))
		return
	}
	g.log.Info("daily ban summary", zap.Int("bans", len(entries)))
	if len(entries) > 0 {
		g.alert("Daily ban summary", summaryHTML(entries))
	}
}

// StartDailyBanSummary reports the ban log once per interval until ctx ends.
func (g *Guard) StartDailyBanSummary(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.sendDailySummary(ctx)
		}
	}
}

// alert mails subject and body in the background when an SMTP relay is configured.
func (g *Guard) alert(subject, body string) {
	if !g.mail.enabled() {
		return
	}
	go func() {
		if err := g.mail.send(subject, body); err != nil {
			g.log.Error("failed to send alert email", zap.String("subject", subject), zap.Error(err))
		}
	}()
}
