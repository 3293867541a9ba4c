package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"weathr/internal/cache"
	"weathr/internal/config"
	"weathr/internal/engine"
	"weathr/internal/geo"
	"weathr/internal/picker"
	"weathr/internal/shell"
	"weathr/internal/weather"
	"weathr/internal/weather/metoffice"
	"weathr/internal/weather/openmeteo"
)

var (
	configFile   string
	simulate     string
	night        bool
	leaves       bool
	durationSecs float64
	imperial     bool
	metricFlag   bool
	hideHUD      bool
	hideLocation bool
	autoLocation bool
	silent       bool
	// forecast
	forecastHours int
)

var (
	headline = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	faint    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "weathr [city...]",
		Short:        "animated weather in your terminal",
		Args:         cobra.ArbitraryArgs,
		RunE:         runAnimation,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVarP(&simulate, "simulate", "s", "", "simulate a weather condition instead of fetching")
	rootCmd.Flags().BoolVarP(&night, "night", "n", false, "simulate night time")
	rootCmd.Flags().BoolVarP(&leaves, "leaves", "l", false, "enable falling autumn leaves")
	rootCmd.Flags().Float64Var(&durationSecs, "duration", 0, "exit after this many seconds")
	rootCmd.Flags().BoolVar(&imperial, "imperial", false, "use imperial units (°F, mph, inch)")
	rootCmd.Flags().BoolVar(&metricFlag, "metric", false, "use metric units (°C, km/h, mm)")
	rootCmd.Flags().BoolVar(&hideHUD, "hide-hud", false, "hide the status line")
	rootCmd.Flags().BoolVar(&hideLocation, "hide-location", false, "hide location in the status line")
	rootCmd.Flags().BoolVar(&autoLocation, "auto-location", false, "auto-detect location via IP (uses ipinfo.io)")
	rootCmd.Flags().BoolVar(&silent, "silent", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("imperial", "metric")

	forecastCmd := &cobra.Command{
		Use:   "forecast [city...]",
		Short: "print an hourly temperature chart",
		Args:  cobra.ArbitraryArgs,
		RunE:  runForecast,
	}
	forecastCmd.Flags().IntVar(&forecastHours, "hours", 24, "hours to chart")
	forecastCmd.Flags().BoolVar(&imperial, "imperial", false, "use imperial units")

	setDefaultCmd := &cobra.Command{
		Use:   "set-default [city...]",
		Short: "save a default location to the config file",
		Args:  cobra.ArbitraryArgs,
		RunE:  runSetDefault,
	}
	setDefaultCmd.Flags().BoolVar(&autoLocation, "auto-location", false, "detect the location via IP instead of a name")

	installCmd := &cobra.Command{
		Use:   "install-shell",
		Short: "add weathr to your shell startup file",
		RunE:  runInstallShell,
	}
	uninstallCmd := &cobra.Command{
		Use:   "uninstall-shell",
		Short: "remove weathr from your shell startup file",
		RunE:  runUninstallShell,
	}

	rootCmd.AddCommand(forecastCmd, setDefaultCmd, installCmd, uninstallCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func pickUnits(cfg *config.Config) weather.Units {
	switch {
	case imperial:
		return weather.Imperial()
	case metricFlag:
		return weather.Metric()
	case cfg.Units == "imperial":
		return weather.Imperial()
	default:
		return weather.Metric()
	}
}

// newProvider builds the configured weather backend. Open-Meteo is the
// default and needs no credentials.
func newProvider(cfg *config.Config) (weather.Provider, error) {
	if cfg.Provider == "met-office" {
		p, err := metoffice.New(cfg.MetOffice.APIKey, cfg.MetOffice.DataSource)
		if err != nil {
			return nil, fmt.Errorf("met-office provider: %w (set met_office.api_key in the config)", err)
		}
		return p, nil
	}
	return openmeteo.New(), nil
}

// resolveLocation decides where to fetch weather for: an explicit city
// query, IP detection, or the saved default, in that order.
func resolveLocation(ctx context.Context, cfg *config.Config, cityArgs []string) (weather.Location, geo.Place, error) {
	if len(cityArgs) > 0 {
		place, err := geo.NewGeocoder().Search(ctx, strings.Join(cityArgs, " "))
		if err != nil {
			return weather.Location{}, geo.Place{}, err
		}
		return weather.Location{Latitude: place.Latitude, Longitude: place.Longitude}, place, nil
	}
	if autoLocation || cfg.Location.Auto || !cfg.Location.HasLocation() {
		store, _ := cache.New()
		if store != nil {
			if loc, city, ok := store.LoadLocation(); ok {
				return loc, geo.Place{Name: city, Latitude: loc.Latitude, Longitude: loc.Longitude}, nil
			}
		}
		place, err := geo.NewIPLocator().Locate(ctx)
		if err != nil {
			return weather.Location{}, geo.Place{}, fmt.Errorf(
				"no saved location and IP detection failed (try `weathr set-default <city>`): %w", err)
		}
		if !silent && !autoLocation && !cfg.Location.Auto {
			fmt.Fprintln(os.Stderr, "No saved location; detected one via ipinfo.io. Save a default with `weathr set-default <city>`.")
		}
		loc := weather.Location{Latitude: place.Latitude, Longitude: place.Longitude}
		if store != nil {
			// A failed cache write never blocks startup.
			_ = store.SaveLocation(loc, place.Label())
		}
		return loc, place, nil
	}
	return weather.Location{
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
		}, geo.Place{
			Name:      cfg.Location.City,
			Country:   cfg.Location.Country,
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
		}, nil
}

func runAnimation(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	units := pickUnits(cfg)
	ctx := context.Background()

	params := engine.Params{
		Units:        units,
		City:         strings.Join(args, " "),
		Duration:     time.Duration(durationSecs * float64(time.Second)),
		HideHUD:      hideHUD || cfg.Display.HideHUD,
		HideLocation: hideLocation || cfg.Display.HideLocation,
		Leaves:       leaves || cfg.Display.ShowLeaves,
	}

	if simulate != "" {
		cond, err := weather.ParseCondition(simulate)
		if err != nil {
			return fmt.Errorf("%w\n\navailable conditions: %s",
				err, strings.Join(weather.ConditionNames(), ", "))
		}
		params.Snapshot = weather.Simulated(cond, night)
	} else {
		loc, place, err := resolveLocation(ctx, cfg, args)
		if err != nil {
			return err
		}
		label := place.Label()
		if params.City == "" {
			params.City = place.Name
		}

		store, err := cache.New()
		if err != nil {
			return err
		}
		provider, err := newProvider(cfg)
		if err != nil {
			return err
		}
		params.Attribution = provider.Attribution()

		fetchCtx, cancel := context.WithCancel(ctx)
		defer func() { cancel() }()

		newClient := func() *weather.Client {
			return weather.NewClient(provider, store, cfg.Refresh, loc, units, label)
		}
		params.Updates = newClient().Run(fetchCtx)
		params.Refresh = func() <-chan weather.Snapshot {
			cancel()
			var next context.Context
			next, cancel = context.WithCancel(ctx)
			return newClient().Run(next)
		}
		// Seed the display from cache while the first fetch runs.
		if cached, ok := store.LoadWeather(loc); ok {
			cached.Offline = true
			cached.Location = label
			params.Snapshot = cached
		} else {
			params.Snapshot = weather.Simulated(weather.PartlyCloudy, false)
			params.Snapshot.Location = label
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	params.Screen = screen
	return engine.Run(ctx, params)
}

func runForecast(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	units := pickUnits(cfg)
	ctx := context.Background()

	loc, place, err := resolveLocation(ctx, cfg, args)
	if err != nil {
		return err
	}

	points, err := openmeteo.New().Hourly(ctx, loc, units, forecastHours)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return errors.New("the forecast came back empty")
	}

	temps := make([]float64, len(points))
	for i, p := range points {
		temps[i] = p.Temperature
	}

	fmt.Println(headline.Render(fmt.Sprintf("Next %d hours in %s", len(points), place.Label())))
	fmt.Println()
	fmt.Println(asciigraph.Plot(temps,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("temperature (%s)", units.TemperatureSymbol())),
	))
	fmt.Println()
	fmt.Println(faint.Render(openmeteo.New().Attribution()))
	return nil
}

func runSetDefault(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	ctx := context.Background()

	var place geo.Place
	if autoLocation {
		place, err = geo.NewIPLocator().Locate(ctx)
		if err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			return errors.New("give a city name or pass --auto-location")
		}
		query := strings.Join(args, " ")
		places, err := geo.NewGeocoder().SearchAll(ctx, query, 5)
		if err != nil {
			return err
		}
		chosen, ok, err := picker.Choose(query, places)
		if err != nil {
			return err
		}
		if !ok {
			return nil // cancelled
		}
		place = chosen
	}

	cfg.Location = config.LocationConfig{
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		City:      place.Name,
		Country:   place.Country,
	}
	if err := config.Save(configFile, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println(headline.Render("Default location saved: ") + place.Label())
	fmt.Println(faint.Render(fmt.Sprintf("%.4f, %.4f", place.Latitude, place.Longitude)))
	return nil
}

func runInstallShell(cmd *cobra.Command, args []string) error {
	rc, err := shell.RCFile(os.Getenv("SHELL"), os.Getenv("HOME"))
	if err != nil {
		return err
	}
	wrote, err := shell.Install(rc)
	if err != nil {
		return err
	}
	if !wrote {
		fmt.Printf("weathr is already in %s\n", rc)
		return nil
	}
	fmt.Printf("Added weathr to %s\n", rc)
	fmt.Printf("Restart your shell or run: source %s\n", rc)
	return nil
}

func runUninstallShell(cmd *cobra.Command, args []string) error {
	rc, err := shell.RCFile(os.Getenv("SHELL"), os.Getenv("HOME"))
	if err != nil {
		return err
	}
	if err := shell.Uninstall(rc); err != nil {
		return err
	}
	fmt.Printf("Removed weathr from %s\n", rc)
	return nil
}
