package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// FallbackModel labels answers and summaries produced without a
// generation backend.
const FallbackModel = "fallback"

// samplingThreshold is the text length above which summarisation prompts
// sample the document instead of sending it whole.
const (
	samplingThreshold = 100000
	headSampleSize    = 40000
	middleSampleSize  = 20000 // taken each side of the midpoint
	tailSampleSize    = 40000
)

// contextPassage is one ranked chunk prepared for answering.
type contextPassage struct {
	Page  int
	Score float64
	Text  string
}

// answerStrategy produces prose from a question and its ranked context.
// Two variants exist: generative (completion-backed) and extractive
// (deterministic, no external calls). Which one runs is decided at the
// call site from the completion port's return values.
type answerStrategy interface {
	// Answer produces a prose answer from the passages.
	Answer(ctx context.Context, question string, passages []contextPassage) (string, error)

	// Summarize produces a summary of text in about sentenceCount sentences.
	Summarize(ctx context.Context, text string, sentenceCount int) (string, error)

	// Model labels the strategy's output.
	Model() string
}

// generativeStrategy prompts a completion backend.
type generativeStrategy struct {
	completions driven.CompletionService
}

func (s *generativeStrategy) Answer(ctx context.Context, question string, passages []contextPassage) (string, error) {
	var b strings.Builder
	b.WriteString("Answer the question from the document passages below. ")
	b.WriteString("When the passages hold relevant information, answer from it; you may ")
	b.WriteString("infer or summarise from related passages when nothing states the answer directly. ")
	b.WriteString("Include brief quotes and mention page numbers in parentheses when ")
	b.WriteString("referencing specific information. ")
	b.WriteString("Say \"I don't know\" only when the passages contain no relevant information at all.\n\n")
	for i, p := range passages {
		fmt.Fprintf(&b, "[[chunk %d page=%d score=%.4f]]\n%s\n\n", i+1, p.Page, p.Score, p.Text)
	}
	fmt.Fprintf(&b, "Question: %s\nAnswer:", question)

	return s.completions.Complete(ctx, b.String())
}

func (s *generativeStrategy) Summarize(ctx context.Context, text string, sentenceCount int) (string, error) {
	sampled := sampleForPrompt(text)

	var b strings.Builder
	fmt.Fprintf(&b, "Summarise the following document in about %d sentences. ", sentenceCount)
	b.WriteString("Be concise and capture the key points.\n\n")
	b.WriteString(sampled)
	b.WriteString("\n\nSummary:")

	return s.completions.Complete(ctx, b.String())
}

func (s *generativeStrategy) Model() string {
	return s.completions.ModelName()
}

// extractiveStrategy assembles output from the source text verbatim.
// It is fully deterministic and never fails.
type extractiveStrategy struct{}

func (extractiveStrategy) Answer(_ context.Context, _ string, passages []contextPassage) (string, error) {
	parts := make([]string, 0, len(passages))
	for _, p := range passages {
		parts = append(parts, strings.TrimSpace(p.Text))
	}
	return strings.Join(parts, "\n\n"), nil
}

func (extractiveStrategy) Summarize(_ context.Context, text string, sentenceCount int) (string, error) {
	sentences := splitSentences(text)
	if len(sentences) > sentenceCount {
		sentences = sentences[:sentenceCount]
	}
	return strings.Join(sentences, " "), nil
}

func (extractiveStrategy) Model() string {
	return FallbackModel
}

// selectAnswer runs the generative strategy when available, falling back
// to the extractive one on unavailability or empty output. The returned
// model string labels whichever strategy produced the text.
func selectAnswer(ctx context.Context, gen answerStrategy, question string, passages []contextPassage) (string, string, error) {
	if gen != nil {
		text, err := gen.Answer(ctx, question, passages)
		switch {
		case err == nil && strings.TrimSpace(text) != "":
			return text, gen.Model(), nil
		case err != nil && !errors.Is(err, domain.ErrCompletionUnavailable):
			return "", "", err
		}
	}

	ex := extractiveStrategy{}
	text, _ := ex.Answer(ctx, question, passages)
	return text, ex.Model(), nil
}

// selectSummary mirrors selectAnswer for summarisation.
func selectSummary(ctx context.Context, gen answerStrategy, text string, sentenceCount int) (string, string, error) {
	if gen != nil {
		summary, err := gen.Summarize(ctx, text, sentenceCount)
		switch {
		case err == nil && strings.TrimSpace(summary) != "":
			return summary, gen.Model(), nil
		case err != nil && !errors.Is(err, domain.ErrCompletionUnavailable):
			return "", "", err
		}
	}

	ex := extractiveStrategy{}
	summary, _ := ex.Summarize(ctx, text, sentenceCount)
	return summary, ex.Model(), nil
}

// sampleForPrompt bounds very long texts by sampling the head, a window
// around the midpoint, and the tail, so the prompt stays a manageable
// size while still touching the whole document.
func sampleForPrompt(text string) string {
	if len(text) <= samplingThreshold {
		return text
	}

	head := text[:headSampleSize]

	mid := len(text) / 2
	midStart := mid - middleSampleSize
	midEnd := mid + middleSampleSize
	middle := text[midStart:midEnd]

	tail := text[len(text)-tailSampleSize:]

	return head + "\n...\n" + middle + "\n...\n" + tail
}

// splitSentences naively splits text into sentences on runs of
// terminating punctuation followed by whitespace. Empty pieces are
// dropped; text without terminators yields a single sentence.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		b.WriteRune(runes[i])
		if !isTerminator(runes[i]) {
			continue
		}
		// Swallow a run of terminators
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			b.WriteRune(runes[i])
		}
		if i+1 < len(runes) && !isSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
