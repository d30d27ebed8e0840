// Package main provides the xmrseed CLI tool for deriving Monero wallets from SSH keys.
package main

import (
	"bufio"
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/xmrseed"
	"github.com/complex-gh/xmrseed/wordlists"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh"
	"golang.org/x/term"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	language       string
	networkName    string
	seedPassphrase string

	wordList = xmrseed.English()
	network  = xmrseed.MainNetwork

	rootCmd = &cobra.Command{
		Use:   "xmrseed <key-path>",
		Short: "Derive a Monero wallet from an SSH key",
		Long: `Derive a Monero wallet from an SSH key.

The ed25519 key seed becomes the wallet seed. xmrseed prints the 25 word
mnemonic, the private and public spend/view keys and the standard address.
Restoring the mnemonic in any Monero wallet gives the same address.

SECURITY TIP: Add a space before the command to prevent it from being
saved in your shell history. For example:
    xmrseed ~/.ssh/id_ed25519
    ^ (note the leading space)
Most shells (bash, zsh) are configured to ignore commands that start
with a space. Check your HISTCONTROL or HIST_IGNORE_SPACE settings.`,
		Example: `  xmrseed ~/.ssh/id_ed25519
  xmrseed ~/.ssh/id_ed25519 --network stagenet
  xmrseed ~/.ssh/id_ed25519 --seed-passphrase "my-passphrase"
  cat ~/.ssh/id_ed25519 | xmrseed`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: applyGlobalFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no arguments provided and stdin is not a pipe, show help
			if len(args) == 0 {
				if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) == 0 {
					return cmd.Help()
				}
			}

			var keyPath string
			if len(args) > 0 {
				keyPath = args[0]
			}

			err := generateWalletOutput(keyPath, seedPassphrase)
			if err != nil && strings.Contains(err.Error(), "key is not password-protected") {
				return formatPasswordError(err)
			}
			return err
		},
	}

	restoreCmd = &cobra.Command{
		Use:   "restore [words...]",
		Short: "Restore wallet keys and address from a mnemonic",
		Long: `Restore wallet keys and address from a 24 or 25 word mnemonic.

The words are read from the arguments, or from stdin when no arguments are
given. When the checksum word is present it must match.`,
		Example: `  xmrseed restore paddles rogue macro ... saved skater
  echo "paddles rogue macro ... saved skater" | xmrseed restore`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			mnemonic, err := readMnemonic(args, os.Stdin)
			if err != nil {
				return err
			}

			seed, err := wordList.Restore(mnemonic, xmrseed.SeedSize)
			if err != nil {
				return fmt.Errorf("could not restore mnemonic: %w", err)
			}

			var s [xmrseed.SeedSize]byte
			copy(s[:], seed)
			return printWallet(os.Stdout, xmrseed.NewKeyPairFromSeed(s))
		},
	}

	inspectCmd = &cobra.Command{
		Use:          "inspect <address>",
		Short:        "Decode an address and show its network, keys and checksum",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			addr, err := xmrseed.DecodeAddress(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("could not decode address: %w", err)
			}

			fmt.Printf("[address]\n")
			fmt.Println()
			fmt.Printf("%s (network 0x%02x)\n", addr.Network, byte(addr.Network))
			fmt.Printf("%s (public spend key)\n", addr.PublicSpendKey)
			fmt.Printf("%s (public view key)\n", addr.PublicViewKey)
			fmt.Printf("%x (checksum)\n", addr.Checksum)
			fmt.Println()
			if addr.Valid() {
				fmt.Println("checksum valid")
			} else {
				fmt.Println("checksum INVALID")
			}
			return nil
		},
	}

	validateCmd = &cobra.Command{
		Use:          "validate <address>",
		Short:        "Check an address checksum",
		Long:         "Check an address checksum. Prints valid or invalid and exits non-zero when invalid.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if !xmrseed.ValidateAddress(strings.TrimSpace(args[0])) {
				fmt.Println("invalid")
				return errors.New("invalid address")
			}
			fmt.Println("valid")
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex.\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for xmrseed.

To load completions:

Bash:
  $ source <(xmrseed completion bash)

Zsh:
  $ xmrseed completion zsh > "${fpath[1]}/_xmrseed"

Fish:
  $ xmrseed completion fish | source

PowerShell:
  PS> xmrseed completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "en", "Mnemonic language")
	rootCmd.PersistentFlags().StringVarP(&networkName, "network", "n", "mainnet", "Address network (mainnet, testnet or stagenet)")
	rootCmd.Flags().StringVar(&seedPassphrase, "seed-passphrase", "", "Passphrase to combine with SSH key seed for additional entropy")
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyGlobalFlags resolves --language and --network before any command runs.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if err := setLanguage(language); err != nil {
		return err
	}
	n, err := xmrseed.ParseNetwork(networkName)
	if err != nil {
		return err //nolint:wrapcheck
	}
	network = n
	return nil
}

// getDefaultSSHDir returns the default SSH directory for the current platform.
// On Unix-like systems (Linux, macOS), this is ~/.ssh/.
// On Windows, this is %USERPROFILE%\.ssh\.
func getDefaultSSHDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ssh"), nil
}

// getSSHKeygenCommand returns the appropriate ssh-keygen command name for the platform.
func getSSHKeygenCommand() string {
	if runtime.GOOS == "windows" {
		return "ssh-keygen.exe"
	}
	return "ssh-keygen"
}

// generateKeyWithSSHKeygen uses ssh-keygen to generate a new ed25519 key at the specified path.
// It runs "ssh-keygen -t ed25519 -f <path>" interactively so the user can set a passphrase.
func generateKeyWithSSHKeygen(keyPath string) error {
	cmdName := getSSHKeygenCommand()
	// G204: cmdName is controlled (only "ssh-keygen" or "ssh-keygen.exe")
	cmd := exec.CommandContext(context.Background(), cmdName, "-t", "ed25519", "-f", keyPath) //nolint:gosec
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to generate key with %s: %w", cmdName, err)
	}
	return nil
}

// resolveKeyPath attempts to resolve a key path. If the path doesn't exist
// and is just a filename (no directory separators), the default SSH directory
// is checked for a key with that name, and as a last resort one is generated
// there with ssh-keygen.
func resolveKeyPath(path string) (string, error) {
	if path == "-" {
		return path, nil
	}

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	cleanedPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanedPath); dir != "." && dir != "" {
		return "", fmt.Errorf("could not open %s: %w", path, os.ErrNotExist)
	}

	// Explicit relative paths are never looked up in the SSH directory.
	pathLower := strings.ToLower(path)
	if strings.HasPrefix(pathLower, "./") || strings.HasPrefix(pathLower, "../") ||
		strings.HasPrefix(pathLower, ".\\") || strings.HasPrefix(pathLower, "..\\") {
		return "", fmt.Errorf("could not open %s: %w", path, os.ErrNotExist)
	}

	sshDir, err := getDefaultSSHDir()
	if err != nil {
		return "", fmt.Errorf("could not determine SSH directory: %w", err)
	}

	defaultPath := filepath.Join(sshDir, filepath.Base(cleanedPath))
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath, nil
	}

	if err := generateKeyWithSSHKeygen(defaultPath); err != nil {
		return "", fmt.Errorf("could not open %s: file not found in current directory or %s, and failed to generate key with %s: %w", path, sshDir, getSSHKeygenCommand(), err)
	}
	return defaultPath, nil
}

func openFileOrStdin(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) != 0 {
		return os.Stdin, nil
	}

	resolvedPath, err := resolveKeyPath(path)
	if err != nil {
		return nil, err
	}

	// G304: resolvedPath is user-provided input, which is expected for a CLI tool
	f, err := os.Open(resolvedPath) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", resolvedPath, err)
	}
	return f, nil
}

func parsePrivateKey(bts, pass []byte) (interface{}, error) {
	if len(pass) == 0 {
		//nolint: wrapcheck
		return ssh.ParseRawPrivateKey(bts)
	}
	//nolint: wrapcheck
	return ssh.ParseRawPrivateKeyWithPassphrase(bts, pass)
}

func isPasswordError(err error) bool {
	var kerr *ssh.PassphraseMissingError
	return errors.As(err, &kerr)
}

// isKeyPasswordProtected checks if an SSH key requires a password.
func isKeyPasswordProtected(bts []byte) (bool, error) {
	_, err := parsePrivateKey(bts, nil)
	if err == nil {
		return false, nil
	}
	if isPasswordError(err) {
		return true, nil
	}
	return false, fmt.Errorf("could not determine if key is password-protected: %w", err)
}

// loadEd25519Key reads and decrypts the SSH key at keyPath. Keys must be
// password-protected; the passphrase is asked for on the terminal.
func loadEd25519Key(keyPath string) (*ed25519.PrivateKey, error) {
	f, err := openFileOrStdin(keyPath)
	if err != nil {
		return nil, fmt.Errorf("could not read key: %w", err)
	}
	defer f.Close() //nolint:errcheck
	bts, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("could not read key: %w", err)
	}

	// If we can't determine protection status, continue with normal parsing
	if isProtected, err := isKeyPasswordProtected(bts); err == nil && !isProtected {
		return nil, fmt.Errorf("key is not password-protected: keys are required to be password-protected")
	}

	key, err := parsePrivateKey(bts, nil)
	if err != nil && isPasswordError(err) {
		pass, err := askKeyPassphrase(keyPath)
		if err != nil {
			return nil, err
		}
		key, err = parsePrivateKey(bts, pass)
		if err != nil {
			return nil, fmt.Errorf("could not parse key with passphrase: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("could not parse key: %w", err)
	}

	ed25519Key, ok := key.(*ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("unknown key type: %T (only ed25519 keys are supported)", key)
	}
	return ed25519Key, nil
}

// generateWalletOutput derives the wallet of the SSH key at keyPath and
// prints it. seedPassphrase is combined with the SSH key seed.
func generateWalletOutput(keyPath string, seedPassphrase string) error {
	key, err := loadEd25519Key(keyPath)
	if err != nil {
		return err
	}
	return printWallet(os.Stdout, xmrseed.KeyPairFromEd25519(key, seedPassphrase))
}

// printWallet writes the mnemonic, keys and address of kp in a fixed order.
func printWallet(w io.Writer, kp *xmrseed.KeyPair) error {
	words, err := wordList.SeedToMnemonic(kp.SpendKey[:])
	if err != nil {
		return fmt.Errorf("could not create mnemonic: %w", err)
	}

	_, _ = fmt.Fprintf(w, "[25 word mnemonic seed]\n\n%s\n\n", strings.Join(words, " "))
	_, _ = fmt.Fprintf(w, "[private keys]\n\n")
	_, _ = fmt.Fprintf(w, "%s (private spend key)\n", kp.SpendKey)
	_, _ = fmt.Fprintf(w, "%s (private view key)\n\n", kp.ViewKey)
	_, _ = fmt.Fprintf(w, "[public keys]\n\n")
	_, _ = fmt.Fprintf(w, "%s (public spend key)\n", kp.PublicSpendKey())
	_, _ = fmt.Fprintf(w, "%s (public view key)\n\n", kp.PublicViewKey())
	_, _ = fmt.Fprintf(w, "[%s address]\n\n%s\n", network, kp.Address(network))
	return nil
}

// readMnemonic joins args, or reads stdin when there are none, and
// normalizes whitespace to single spaces.
func readMnemonic(args []string, stdin io.Reader) (string, error) {
	var mnemonic string
	if len(args) > 0 {
		mnemonic = strings.Join(args, " ")
	} else {
		scanner := bufio.NewScanner(stdin)
		if scanner.Scan() {
			mnemonic = scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("could not read mnemonic: %w", err)
		}
	}

	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if mnemonic == "" {
		return "", errors.New("no mnemonic given")
	}
	return mnemonic, nil
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatPasswordError displays err as a styled block when stdout is a
// terminal and returns a short error so the command exits non-zero.
func formatPasswordError(err error) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, err.Error())
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	return fmt.Errorf("keys are required to be password-protected")
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}

// setLanguage selects the mnemonic word list.
func setLanguage(language string) error {
	list := getWordlist(language)
	if list == nil {
		return fmt.Errorf("this language is not supported")
	}
	wl, err := xmrseed.NewWordList(list)
	if err != nil {
		return fmt.Errorf("could not load word list: %w", err)
	}
	wordList = wl
	return nil
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

var wordLists = map[lang.Tag][]string{
	lang.AmericanEnglish: wordlists.English,
	lang.BritishEnglish:  wordlists.English,
	lang.English:         wordlists.English,
}

func getWordlist(language string) []string {
	language = sanitizeLang(language)
	tag := lang.Make(language)
	en := display.English.Languages() // default language name matcher
	for t := range wordLists {
		if sanitizeLang(en.Name(t)) == language {
			tag = t
			break
		}
	}
	if tag == lang.Und { // Unknown language
		return nil
	}
	base, _ := tag.Base()
	btag := lang.MustParse(base.String())
	wl := wordLists[tag]
	if wl == nil {
		return wordLists[btag]
	}
	return wl
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read passphrase: %w", err)
	}
	return pass, nil
}

func askKeyPassphrase(path string) ([]byte, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	return readPassword(fmt.Sprintf("Enter the passphrase to unlock %q: ", path))
}
