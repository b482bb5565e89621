package main

import "go.uber.org/zap"

var decodeLog = zap.NewNop()
var tallyLog = zap.NewNop()

func enableDebugLogging(l *zap.Logger) {
	decodeLog = l
	tallyLog = l
}
