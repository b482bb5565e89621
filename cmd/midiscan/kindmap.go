package main

import (
	"context"

	"github.com/mprosk/midiwire/pkg/midi"
	"go.uber.org/zap"
)

// kind -> channel -> count
type channelMap map[midi.Channel]int
type kindMap map[midi.Kind]channelMap

func newKindMap(parent context.Context, paths <-chan string, cntRoutines int) (kindMap, error) {
	log := tallyLog.Named("newKindMap")
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, paths, cntRoutines)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	m := make(kindMap)

	for result := range results {
		if result.err != nil {
			return nil, result.err
		}

		log.Debug("result", zap.String("name", result.name), zap.Int("messages", len(result.messages)))

		for _, msg := range result.messages {
			log.Debug("message", zap.Stringer("kind", msg.Kind), zap.Uint8("channel", uint8(msg.Channel)))

			if _, ok := m[msg.Kind]; !ok {
				m[msg.Kind] = make(channelMap)
			}
			m[msg.Kind][msg.Channel]++
		}
	}

	return m, nil
}
