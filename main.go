// Package main provides the entry point for the KindKeeper voice assistant CLI.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kindkeeper/kindkeeper/internal/audio"
	"github.com/kindkeeper/kindkeeper/internal/cache"
	"github.com/kindkeeper/kindkeeper/speech"
	"github.com/kindkeeper/kindkeeper/speech/engines/elevenlabs"
	"github.com/kindkeeper/kindkeeper/speech/engines/mock"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	engineName string
	volume     float64
	noPlay     bool
	noCache    bool
	showStats  bool
	outFile    string

	rootCmd = &cobra.Command{
		Use:   "kindkeeper [TEXT]",
		Short: "Speak assistant responses aloud, with feeling",
		Long: paragraph(
			fmt.Sprintf("\nSpeak %s responses aloud. Each response is classified, voiced to match its tone, and cached so repeated answers play back instantly.", keyword("KindKeeper")),
		),
		SilenceErrors: false,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: execute,
	}
)

// session holds the pipeline for one CLI invocation: engine, cache,
// responder and the audio device, torn down together.
type session struct {
	cfg       speech.Config
	engine    speech.Engine
	cache     *cache.Cache
	responder *speech.Responder
	player    speech.Player
	out       *os.File
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadSpeechConfig(cmd)
	if err != nil {
		return nil, err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return nil, err
	}

	var audioCache *cache.Cache
	if cfg.Cache.Enabled && !noCache {
		audioCache = cache.New(cfg.Cache.Capacity, cfg.Cache.TTL)
	}

	s := &session{
		cfg:       cfg,
		engine:    engine,
		cache:     audioCache,
		responder: speech.NewResponder(engine, audioCache, log.Default()),
	}

	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			_ = engine.Close()
			return nil, fmt.Errorf("unable to create output file: %w", err)
		}
		s.out = f
		return s, nil
	}

	if !noPlay {
		info := engine.Info()
		player, err := audio.NewPlayer(audio.Config{
			SampleRate: info.SampleRate,
			Channels:   info.Channels,
			BitDepth:   info.BitDepth,
			Volume:     cfg.Volume,
		})
		if err != nil {
			_ = engine.Close()
			return nil, err
		}
		s.player = player
	}

	return s, nil
}

func (s *session) speak(ctx context.Context, text string) error {
	reply, err := s.responder.Speak(ctx, text)
	if err != nil {
		return err
	}

	if s.out != nil {
		if _, err := s.out.Write(reply.Audio); err != nil {
			return fmt.Errorf("unable to write audio: %w", err)
		}
		return nil
	}

	if s.player != nil {
		return s.player.Play(reply.Audio)
	}

	// Without a device, report what would have been spoken.
	fmt.Printf("%s %s cached=%v %d bytes\n",
		reply.Result.Kind, reply.Result.Emotion, reply.CacheHit, len(reply.Audio))
	return nil
}

func (s *session) close() {
	if showStats && s.cache != nil {
		stats := s.responder.CacheStats()
		fmt.Fprintf(os.Stderr, "cache: %d entries, %d hits, %d misses, %d evictions, hit rate %.0f%%\n",
			stats.Entries, stats.Hits, stats.Misses, stats.Evictions, stats.HitRate*100)
	}
	if s.out != nil {
		_ = s.out.Close()
	}
	if s.player != nil {
		_ = s.player.Close()
	}
	_ = s.engine.Close()
}

func execute(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if len(args) > 0 {
		return s.speak(ctx, strings.Join(args, " "))
	}

	// With piped input, speak each line. Repeated lines exercise the cache.
	piped, err := stdinIsPipe()
	if err != nil {
		return err
	}
	if !piped {
		return errors.New("missing response text: pass it as an argument or pipe lines on stdin")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := s.speak(ctx, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("unable to read stdin: %w", err)
	}
	return nil
}

// loadSpeechConfig merges the config file, environment and flags. Flags win
// over the config file. The API key usually arrives via the environment or
// a .env file rather than the config file, so the environment wins for it.
func loadSpeechConfig(cmd *cobra.Command) (speech.Config, error) {
	cfg, err := speech.LoadConfigFromViper()
	if err != nil {
		return cfg, err
	}

	if envCfg, err := speech.LoadConfigFromEnv(); err == nil {
		if cfg.ElevenLabs.APIKey == "" {
			cfg.ElevenLabs.APIKey = envCfg.ElevenLabs.APIKey
		}
	}

	if cmd.Flags().Changed("engine") {
		cfg.Engine = engineName
	}
	if cmd.Flags().Changed("volume") {
		cfg.Volume = volume
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func buildEngine(cfg speech.Config) (speech.Engine, error) {
	switch cfg.Engine {
	case "elevenlabs":
		return elevenlabs.New(cfg.ElevenLabs)
	case "mock":
		return mock.New(cfg.Mock), nil
	default:
		return nil, fmt.Errorf("%w %q", speech.ErrUnknownEngine, cfg.Engine)
	}
}

func stdinIsPipe() (bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to stat stdin: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice == 0 || stat.Size() > 0 {
		return true, nil
	}
	return false, nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	// API keys commonly live in a .env during development.
	_ = godotenv.Load()

	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().StringVarP(&engineName, "engine", "e", "", "synthesis engine (elevenlabs/mock)")
	rootCmd.Flags().Float64VarP(&volume, "volume", "v", 1.0, "playback volume (0.0 to 2.0)")
	rootCmd.Flags().BoolVar(&noPlay, "no-play", false, "classify and synthesize without playing audio")
	rootCmd.Flags().StringVarP(&outFile, "out", "o", "", "write raw PCM to a file instead of playing it")
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false, "synthesize every response, even repeated ones")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "print cache statistics on exit")

	speech.SetDefaults()

	rootCmd.AddCommand(classifyCmd, parseCmd, configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "kindkeeper")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "kindkeeper")}, dirs...)
	}

	if c := os.Getenv("KINDKEEPER_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("kindkeeper")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("kindkeeper")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "kindkeeper.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
