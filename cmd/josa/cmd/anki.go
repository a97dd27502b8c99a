package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/josa"
	"github.com/f3rmion/josa/internal/anki"
)

var (
	ankiOutput string
	ankiDeck   string
	ankiWords  string
)

// Forms drilled per word. These are the particles whose spelling
// actually alternates; invariant particles make pointless cards.
var drilledForms = []string{"이(가)", "을(를)", "은(는)", "과(와)", "(으)로", "아(야)", "이다"}

var ankiCmd = &cobra.Command{
	Use:   "anki <word>...",
	Short: "Export an Anki deck of particle-attachment flashcards",
	Long: `Export an Anki .apkg deck with one card per word and alternating
particle. The front shows the word and particle, the back shows the
attached phrase.

Words are taken from the arguments, or one per line from a file with
--words.

Example:
  josa anki -o particles.apkg 집 나오 미궁
  josa anki -o particles.apkg --words wordlist.txt`,
	RunE: runAnki,
}

func init() {
	rootCmd.AddCommand(ankiCmd)

	ankiCmd.Flags().StringVarP(&ankiOutput, "output", "o", "josa.apkg", "output .apkg file")
	ankiCmd.Flags().StringVarP(&ankiDeck, "deck", "d", "Korean Particles", "deck name")
	ankiCmd.Flags().StringVarP(&ankiWords, "words", "w", "", "file with one word per line")
}

func runAnki(cmd *cobra.Command, args []string) error {
	registry, style, err := setup()
	if err != nil {
		return err
	}

	words := append([]string{}, args...)
	if ankiWords != "" {
		fileWords, err := readWordList(ankiWords)
		if err != nil {
			return err
		}
		words = append(words, fileWords...)
	}
	if len(words) == 0 {
		return fmt.Errorf("no words given; pass arguments or --words")
	}

	var notes []anki.Note
	for _, word := range words {
		for _, form := range drilledForms {
			notes = append(notes, anki.Note{
				Word:     word,
				Particle: form,
				Phrase:   registry.Postfix(word, form, josa.WithToleranceStyle(style)),
			})
		}
	}

	if err := anki.WriteDeck(ankiOutput, ankiDeck, notes); err != nil {
		return fmt.Errorf("writing deck: %w", err)
	}

	fmt.Printf("Wrote %d cards for %d words to %s\n", len(notes), len(words), ankiOutput)
	return nil
}

func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}
