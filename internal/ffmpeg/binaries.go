package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// Binary resolution order: explicit environment override, then PATH.
const (
	envFFmpeg   = "SUBSYNC_FFMPEG_PATH"
	envFFprobe  = "SUBSYNC_FFPROBE_PATH"
	envMkvmerge = "SUBSYNC_MKVMERGE_PATH"
)

var (
	resolveMu sync.Mutex
	resolved  = map[string]string{}
)

// FFmpegPath locates the ffmpeg binary.
func FFmpegPath() (string, error) {
	return resolve("ffmpeg", envFFmpeg)
}

// FFprobePath locates the ffprobe binary.
func FFprobePath() (string, error) {
	return resolve("ffprobe", envFFprobe)
}

// MkvmergePath locates the mkvmerge binary.
func MkvmergePath() (string, error) {
	return resolve("mkvmerge", envMkvmerge)
}

func resolve(name, envVar string) (string, error) {
	resolveMu.Lock()
	defer resolveMu.Unlock()

	if path, ok := resolved[name]; ok {
		return path, nil
	}

	if path := os.Getenv(envVar); path != "" {
		resolved[name] = path
		return path, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found: install it or set %s", name, envVar)
	}
	resolved[name] = path
	return path, nil
}
