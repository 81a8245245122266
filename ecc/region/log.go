package region

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// LogObserver returns an Observer that writes each event to l. Write and
// read payloads are logged in hex at debug level.
func LogObserver(l *slog.Logger) Observer {
	if l == nil {
		l = discard
	}
	return ObserverFunc(func(e Event) {
		level := slog.LevelInfo
		attrs := []slog.Attr{slog.Int("offset", e.Offset)}

		switch e.Kind {
		case KindWrite, KindRead:
			level = slog.LevelDebug
			if !l.Enabled(context.Background(), level) {
				return
			}
			attrs = append(attrs, slog.Int("size", e.Size), slog.String("data", hex.EncodeToString(e.Data)))
		case KindCorrected:
			attrs = append(attrs,
				slog.Int("bitPosition", e.BitPosition),
				slog.Int("slot", e.Slot),
				slog.Int("syndrome", int(e.Syndrome)))
		case KindCheckBit:
			level = slog.LevelWarn
			attrs = append(attrs, slog.Int("slot", e.Slot), slog.Int("syndrome", int(e.Syndrome)))
		case KindUncorrectable:
			level = slog.LevelError
			attrs = append(attrs,
				slog.Int("bitPosition", e.BitPosition),
				slog.Int("slot", e.Slot),
				slog.Int("syndrome", int(e.Syndrome)))
		case KindFault:
			level = slog.LevelWarn
			attrs = append(attrs, slog.Int("slot", e.Slot), slog.Int("mask", int(e.Mask)))
		case KindScrubbed:
			attrs = append(attrs, slog.Int("size", e.Size))
		}
		l.LogAttrs(context.Background(), level, e.Kind.String(), attrs...)
	})
}
