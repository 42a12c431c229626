package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"kinobot/internal/format"
)

// getStatusText builds the admin diagnostics report: host health plus
// registry size.
func getStatusText(ctx *AppContext) string {
	var b strings.Builder
	b.WriteString("📊 *Bot status*\n\n")

	if h, err := host.Info(); err == nil {
		b.WriteString(fmt.Sprintf("⏱ Host uptime: `%s`\n", format.Uptime(h.Uptime)))
	}
	if v, err := mem.VirtualMemory(); err == nil {
		b.WriteString(fmt.Sprintf("🧠 RAM: `%.1f%%` used\n", v.UsedPercent))
	}
	if d, err := disk.Usage(filepath.Dir(ctx.Config.DatabasePath)); err == nil {
		b.WriteString(fmt.Sprintf("💾 DB volume: `%.1f%%` used, `%s` free\n", d.UsedPercent, format.Bytes(d.Free)))
	}

	n, err := ctx.Store.Count(context.Background())
	if err != nil {
		slog.Error("Video count failed", "err", err)
		b.WriteString("🎬 Registered videos: `n/a`\n")
	} else {
		b.WriteString(fmt.Sprintf("🎬 Registered videos: `%d`\n", n))
	}

	return b.String()
}
