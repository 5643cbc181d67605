package task

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hellodata/notes-web/internal/app"

	"github.com/bytedance/sonic"
	"golang.org/x/mod/semver"
)

const (
	ServiceVersionURL = "https://img.shields.io/github/v/release/hellodata/notes-web.json"
	ServiceReleaseURL = "https://github.com/hellodata/notes-web/releases/latest"
)

type ShieldsJSON struct {
	Message string `json:"message"`
}

// CheckVersionTask 定期检查是否有新版本发布
type CheckVersionTask struct {
	app *app.App
}

func init() {
	RegisterWithApp(func(appContainer *app.App) (Task, error) {
		return &CheckVersionTask{
			app: appContainer,
		}, nil
	})
}

func (t *CheckVersionTask) Name() string {
	return "check_version"
}

func (t *CheckVersionTask) Run(ctx context.Context) error {
	latest, err := t.fetchVersion(ctx, ServiceVersionURL)
	if err != nil {
		return err
	}

	current := t.app.Version()
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	t.app.SetCheckVersionInfo(app.CheckVersionInfo{
		VersionIsNew:   semver.Compare(latest, current) > 0,
		VersionNewName: latest,
		VersionNewLink: ServiceReleaseURL,
	})

	return nil
}

func (t *CheckVersionTask) fetchVersion(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var sj ShieldsJSON
	if err := sonic.Unmarshal(body, &sj); err != nil {
		return "", err
	}

	return sj.Message, nil
}

func (t *CheckVersionTask) LoopInterval() time.Duration {
	return 30 * time.Minute
}

func (t *CheckVersionTask) IsStartupRun() bool {
	return true
}
