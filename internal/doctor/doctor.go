// Package doctor runs readiness diagnostics for config, audio, and the STT endpoint.
package doctor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Dvargas2332/yui/internal/audio"
	"github.com/Dvargas2332/yui/internal/config"
	"github.com/Dvargas2332/yui/internal/wake"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes environment/config/runtime checks for a loaded config.
func Run(loaded config.Loaded) Report {
	checks := []Check{
		{
			Name:    "config",
			Pass:    true,
			Message: fmt.Sprintf("loaded %q", loaded.Path),
		},
		checkCandidates(loaded.Config.Wake),
	}

	if strings.EqualFold(strings.TrimSpace(loaded.Config.STT.Backend), config.BackendPulse) {
		checks = append(checks, checkAudioSelection(loaded.Config))
		checks = append(checks, checkEndpoint(loaded.Config.STT.Endpoint))
	}

	return Report{Checks: checks}
}

// checkCandidates surfaces the wake candidate list or the disabled state.
func checkCandidates(cfg config.WakeConfig) Check {
	candidates := wake.Candidates(cfg)
	if len(candidates) == 0 {
		return Check{
			Name:    "wake.candidates",
			Pass:    true,
			Message: "no candidates configured; wake gating is disabled",
		}
	}
	return Check{
		Name:    "wake.candidates",
		Pass:    true,
		Message: fmt.Sprintf("%d candidate(s): %s", len(candidates), strings.Join(candidates, ", ")),
	}
}

// checkAudioSelection runs live device selection to surface selection/fallback issues.
func checkAudioSelection(cfg config.Config) Check {
	index := cfg.STT.MicrophoneIndex
	if index < 0 {
		index = cfg.STT.SounddeviceIndex
	}
	selection, err := audio.SelectSource(context.Background(), audio.SourceQuery{
		Index:    index,
		Input:    cfg.STT.Input,
		Fallback: cfg.STT.Fallback,
	})
	if err != nil {
		return Check{Name: "audio.device", Pass: false, Message: err.Error()}
	}
	message := fmt.Sprintf("selected %q", selection.Device.ID)
	if selection.Warning != "" {
		message = fmt.Sprintf("%s (%s)", message, selection.Warning)
	}
	return Check{Name: "audio.device", Pass: true, Message: message}
}

// checkEndpoint probes the recognition endpoint for basic reachability.
func checkEndpoint(endpoint string) Check {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return Check{Name: "stt.endpoint", Pass: false, Message: "endpoint is empty"}
	}

	client := &http.Client{Timeout: 3 * time.Second}
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return Check{Name: "stt.endpoint", Pass: false, Message: fmt.Sprintf("invalid endpoint: %v", err)}
	}

	resp, err := client.Do(req)
	if err != nil {
		return Check{Name: "stt.endpoint", Pass: false, Message: fmt.Sprintf("unreachable: %v", err)}
	}
	defer resp.Body.Close()

	// Any HTTP response proves the endpoint is reachable; recognition itself
	// uses POST and may reject GET.
	return Check{Name: "stt.endpoint", Pass: true, Message: fmt.Sprintf("reachable (%s)", resp.Status)}
}
