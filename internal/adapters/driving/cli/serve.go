package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driving/httpapi"
	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
)

var (
	serveAddr string
	serveNoUI bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and browser UI",
	Long: `Start the PaperIQ HTTP server.

Serves POST /analyze, the analysis history endpoints, and a browser UI
at the root path. The listen address defaults to the configured
server.addr setting (localhost:8000).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (host:port), overrides the configured setting")
	serveCmd.Flags().BoolVar(&serveNoUI, "no-ui", false, "disable the embedded browser UI")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}

	settings := settingsService
	if serveAddr != "" || serveNoUI {
		settings = &serveOverrides{inner: settingsService, addr: serveAddr, noUI: serveNoUI}
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Analyzer: analyzerService,
		History:  historyService,
		Settings: settings,
	})
	if err != nil {
		return err
	}

	cmd.Printf("PaperIQ listening on http://%s\n", server.Addr())
	return server.Run(cmd.Context())
}

// serveOverrides layers command-line flags over the persisted settings
// without writing them back to disk.
type serveOverrides struct {
	inner driving.SettingsService
	addr  string
	noUI  bool
}

var _ driving.SettingsService = (*serveOverrides)(nil)

func (o *serveOverrides) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()
	if o.inner != nil {
		loaded, err := o.inner.Get()
		if err != nil {
			return nil, err
		}
		settings = *loaded
	}
	if o.addr != "" {
		settings.Server.Addr = o.addr
	}
	if o.noUI {
		settings.Server.UIEnabled = false
	}
	return &settings, nil
}

func (o *serveOverrides) Save(settings *domain.AppSettings) error {
	if o.inner == nil {
		return errors.New("settings service not configured")
	}
	return o.inner.Save(settings)
}

func (o *serveOverrides) SetKey(key, value string) error {
	if o.inner == nil {
		return errors.New("settings service not configured")
	}
	return o.inner.SetKey(key, value)
}

func (o *serveOverrides) Keys() []string {
	if o.inner == nil {
		return nil
	}
	return o.inner.Keys()
}
