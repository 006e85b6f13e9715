package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/unistego/unistego/pkg"
	"github.com/unistego/unistego/pkg/logging"
	"github.com/unistego/unistego/pkg/stego"
)

const version = "0.2.0"

const defaultCover = "👍"

var (
	methodName string
	text       string
	cover      string
	logLevel   string
	rootCmd    *cobra.Command
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "unistego",
		Short: "Hide messages in plain text",
		Long: `Hide arbitrary messages inside ordinary-looking text and recover
them again, using invisible Unicode variation selectors or homoglyph
substitution.`,
		Example: `  unistego -m emoji encode -t "Hello world"
  unistego -m emoji encode -t "Secret message" -c 🔒
  unistego -m emoji decode -t "👍..."
  unistego -m homoglyph encode -t hi -c "The quick vixen climbs over the idle dog; Mexico via Madrid."`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&methodName, "method", "m", "", "Steganographic method (emoji, homoglyph)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	if err := rootCmd.MarkPersistentFlagRequired("method"); err != nil {
		panic(err)
	}

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a message into a cover text",
		RunE:  runEncode,
	}
	encodeCmd.Flags().StringVarP(&text, "text", "t", "", "Message to encode ('-' reads stdin)")
	encodeCmd.Flags().StringVarP(&cover, "cover", "c", defaultCover, "Cover text to hide the message in ('-' reads stdin)")
	if err := encodeCmd.MarkFlagRequired("text"); err != nil {
		panic(err)
	}

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a message from a carrier text",
		RunE:  runDecode,
	}
	decodeCmd.Flags().StringVarP(&text, "text", "t", "", "Carrier text to decode ('-' reads stdin)")
	if err := decodeCmd.MarkFlagRequired("text"); err != nil {
		panic(err)
	}

	capacityCmd := &cobra.Command{
		Use:   "capacity",
		Short: "Show how many bytes a cover text can carry",
		RunE:  runCapacity,
	}
	capacityCmd.Flags().StringVarP(&cover, "cover", "c", "", "Cover text to measure ('-' reads stdin)")
	if err := capacityCmd.MarkFlagRequired("cover"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(encodeCmd, decodeCmd, capacityCmd)
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("unistego %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// maybeStdin resolves a flag value of "-" to the whole of stdin, with
// the trailing newline of line-oriented input stripped.
func maybeStdin(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	method, err := stego.ParseMethod(methodName)
	if err != nil {
		return err
	}

	msg, err := maybeStdin(text)
	if err != nil {
		return err
	}
	cov, err := maybeStdin(cover)
	if err != nil {
		return err
	}

	out, err := pkg.EncodeWithLogger(method, msg, cov, logging.NewLogger("unistego", effectiveLogLevel(), os.Stderr))
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	method, err := stego.ParseMethod(methodName)
	if err != nil {
		return err
	}

	carrier, err := maybeStdin(text)
	if err != nil {
		return err
	}

	out, err := pkg.DecodeWithLogger(method, carrier, logging.NewLogger("unistego", effectiveLogLevel(), os.Stderr))
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

func runCapacity(cmd *cobra.Command, args []string) error {
	method, err := stego.ParseMethod(methodName)
	if err != nil {
		return err
	}

	cov, err := maybeStdin(cover)
	if err != nil {
		return err
	}

	capacity, err := pkg.EstimateCapacity(method, cov)
	if err != nil {
		return err
	}

	if capacity < 0 {
		fmt.Println("unbounded")
		return nil
	}
	fmt.Printf("%d bytes\n", capacity)
	return nil
}

func effectiveLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	return logging.GetLogLevel()
}
