package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"kslang/internal/diag"
	"kslang/internal/diagfmt"
	"kslang/internal/driver"
	"kslang/internal/source"
	"kslang/internal/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex [flags] [file.ks | dir]",
	Short: "Tokenize kslang source text",
	Long: `Lex breaks source text into classified, span-tagged tokens.

Input comes from a file argument, --string, or standard input (default).
A directory argument tokenizes every *.ks file under it in parallel.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	lexCmd.Flags().StringP("string", "s", "", "take source text from the argument")
	lexCmd.Flags().StringP("format", "F", "", "output format (pretty|text|json|binary)")
	lexCmd.Flags().StringP("output", "o", "stdout", "output destination (stdout|stderr|PATH)")
	lexCmd.Flags().IntP("jobs", "j", 0, "parallel workers for directory mode (0 = GOMAXPROCS)")
	lexCmd.Flags().Bool("cache", false, "consult and populate the on-disk lex cache (file input only)")
	lexCmd.Flags().Bool("skip-trivia", false, "drop Whitespace and Comment tokens from the output")
}

func runLex(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outputTo, _ := cmd.Flags().GetString("output")
	literal, _ := cmd.Flags().GetString("string")
	jobs, _ := cmd.Flags().GetInt("jobs")
	useCache, _ := cmd.Flags().GetBool("cache")
	skipTrivia, _ := cmd.Flags().GetBool("skip-trivia")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	// kslang.toml может задавать умолчания; явные флаги сильнее
	manifest, found, err := loadManifest(".")
	if err != nil {
		return err
	}
	if format == "" {
		format = "pretty"
		if found && manifest.Config.Lex.Format != "" {
			format = manifest.Config.Lex.Format
		}
	}
	ext := driver.SourceExt
	if found && manifest.Config.Lex.Ext != "" {
		ext = manifest.Config.Lex.Ext
	}

	switch format {
	case "pretty", "text", "json", "binary":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	out, closeOut, err := openOutput(outputTo)
	if err != nil {
		return err
	}
	defer closeOut()

	// Директория — параллельный режим
	if len(args) == 1 {
		if st, err := os.Stat(args[0]); err == nil && st.IsDir() {
			return runLexDir(cmd, args[0], ext, format, maxDiagnostics, jobs, out, skipTrivia)
		}
	}

	res, err := lexSingle(args, literal, maxDiagnostics, useCache)
	if err != nil {
		code := diag.CodeForSourceError(err)
		fmt.Fprintf(os.Stderr, "ERROR %s: %v\n", code.ID(), err)
		return fmt.Errorf("%s: %w", code, err)
	}

	reportDiagnostics(cmd, res)

	if err := emitTokens(out, format, res, skipTrivia); err != nil {
		return err
	}

	if n := res.ErrorCount(); n > 0 {
		if !quiet {
			fmt.Fprintf(os.Stderr, "%d lexical error(s)\n", n)
		}
		return fmt.Errorf("lexical analysis failed")
	}
	return nil
}

// lexSingle токенизирует один источник: файл, строку или stdin.
func lexSingle(args []string, literal string, maxDiagnostics int, useCache bool) (*driver.Result, error) {
	switch {
	case len(args) == 1:
		if useCache {
			return lexFileCached(args[0], maxDiagnostics)
		}
		return driver.TokenizeFile(args[0], maxDiagnostics)
	case literal != "":
		return driver.TokenizeString(literal, maxDiagnostics)
	default:
		return driver.TokenizeStdin(os.Stdin, maxDiagnostics)
	}
}

// lexFileCached отдаёт результат из дискового кэша по content-hash,
// при промахе токенизирует и кладёт в кэш.
func lexFileCached(path string, maxDiagnostics int) (*driver.Result, error) {
	src, err := source.Load(path)
	if err != nil {
		return nil, err
	}

	cache, err := driver.OpenDiskCache("kslang")
	if err != nil {
		// кэш не критичен
		return driver.Tokenize(src, maxDiagnostics), nil
	}

	var payload driver.CachePayload
	if ok, err := cache.Get(src.Hash, &payload); err == nil && ok {
		if res, err := payload.Restore(src); err == nil {
			return res, nil
		}
	}

	res := driver.Tokenize(src, maxDiagnostics)
	_ = cache.Put(src.Hash, driver.NewCachePayload(res))
	return res, nil
}

func runLexDir(cmd *cobra.Command, dir, ext, format string, maxDiagnostics, jobs int, out io.Writer, skipTrivia bool) error {
	results, err := driver.TokenizeDirExt(cmd.Context(), dir, ext, maxDiagnostics, jobs)
	if err != nil {
		return err
	}

	errTotal := 0
	for _, dr := range results {
		if dr.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: ERROR %s: %v\n", dr.Path, diag.CodeForSourceError(dr.Err).ID(), dr.Err)
			errTotal++
			continue
		}
		fmt.Fprintf(out, "== %s\n", dr.Path)
		reportDiagnostics(cmd, dr.Result)
		if err := emitTokens(out, format, dr.Result, skipTrivia); err != nil {
			return err
		}
		errTotal += dr.Result.ErrorCount()
	}
	if errTotal > 0 {
		return fmt.Errorf("lexical analysis failed: %d error(s)", errTotal)
	}
	return nil
}

// reportDiagnostics выводит диагностику в stderr, если есть.
func reportDiagnostics(cmd *cobra.Command, res *driver.Result) {
	if !res.Bag.HasErrors() {
		return
	}
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	res.Bag.Sort()
	diagfmt.Pretty(os.Stderr, res.Bag, res.Source, diagfmt.PrettyOpts{
		Color:   useColor,
		Context: 2,
	})
}

func emitTokens(out io.Writer, format string, res *driver.Result, skipTrivia bool) error {
	tokens := res.Tokens
	if skipTrivia {
		tokens = filterTrivia(tokens)
	}
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(out, tokens, res.Source)
	case "text":
		return diagfmt.FormatTokensText(out, tokens)
	case "json":
		return diagfmt.FormatTokensJSON(out, tokens)
	case "binary":
		return diagfmt.FormatTokensBinary(out, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func filterTrivia(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsTrivia() {
			out = append(out, t)
		}
	}
	return out
}

func openOutput(dest string) (io.Writer, func(), error) {
	switch dest {
	case "stdout", "":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	default:
		f, err := os.Create(dest)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
}
