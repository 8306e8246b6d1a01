package utils

import (
	"bufio"
	"bytes"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Reader struct {
	Reader *bufio.Reader
	Buffer *bytes.Buffer
}

func (r *Reader) Read(p []byte) (n int, err error) {
	return r.Reader.Read(p)
}

func (*Reader) Close() error { return nil }

// Fd fake terminal file descriptor.
func (*Reader) Fd() uintptr {
	return os.Stdin.Fd()
}

func NewBufferReader() *Reader {
	var buffer bytes.Buffer
	return &Reader{bufio.NewReader(&buffer), &buffer}
}

func NewBufferWriter() (*bufio.Writer, *bytes.Buffer) {
	var buffer bytes.Buffer
	writer := bufio.NewWriter(&buffer)
	return writer, &buffer
}

// NewDebugLogger returns a logger for tests, all messages are stored to the buffer.
func NewDebugLogger() (*zap.SugaredLogger, *bufio.Writer, *bytes.Buffer) {
	writer, buffer := NewBufferWriter()
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "  ",
	}
	loggerRaw := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(writer),
		zapcore.DebugLevel,
	))
	logger := loggerRaw.Sugar()

	return logger, writer, buffer
}
