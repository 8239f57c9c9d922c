// ABOUTME: Tokenizer and frequency counter feeding the word-cloud layout
// ABOUTME: Strips HTML, lowercases, drops numbers and built-in English stopwords

package wordcloud

import (
	"regexp"
	"sort"
	"strings"

	"github.com/harper/newsroom/internal/content"
)

// wordPattern matches words of two or more characters, allowing inner apostrophes.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}'’]+`)

// WordCount is a word and how often it occurred.
type WordCount struct {
	Word  string
	Count int
}

// Frequencies counts the words of text, most frequent first.
// Ties are broken alphabetically so the order is stable.
func Frequencies(text string, stopwords map[string]struct{}) []WordCount {
	counts := map[string]int{}
	for _, token := range wordPattern.FindAllString(content.PlainText(text), -1) {
		word := normalizeWord(token)
		if len(word) < 2 || isNumber(word) {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		counts[word]++
	}

	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}

func normalizeWord(token string) string {
	word := strings.ToLower(strings.ReplaceAll(token, "’", "'"))
	word = strings.TrimSuffix(word, "'s")
	return strings.Trim(word, "'")
}

func isNumber(word string) bool {
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DefaultStopwords returns the built-in English stopword set.
func DefaultStopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(englishStopwords))
	for _, w := range englishStopwords {
		set[w] = struct{}{}
	}
	return set
}

var englishStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and",
	"any", "are", "aren't", "as", "at", "be", "because", "been", "before", "being",
	"below", "between", "both", "but", "by", "can", "can't", "cannot", "com", "could",
	"couldn't", "did", "didn't", "do", "does", "doesn't", "doing", "don't", "down",
	"during", "each", "else", "ever", "few", "for", "from", "further", "get", "had",
	"hadn't", "has", "hasn't", "have", "haven't", "having", "he", "he'd", "he'll",
	"hence", "her", "here", "here's", "hers", "herself", "him", "himself", "his", "how",
	"how's", "however", "http", "https", "i", "i'd", "i'll", "i'm", "i've", "if", "in",
	"into", "is", "isn't", "it", "it's", "its", "itself", "just", "k", "let's", "like",
	"me", "more", "most", "mustn't", "my", "myself", "no", "nor", "not", "of", "off",
	"on", "once", "only", "or", "other", "otherwise", "ought", "our", "ours",
	"ourselves", "out", "over", "own", "r", "same", "shall", "shan't", "she", "she'd",
	"she'll", "should", "shouldn't", "since", "so", "some", "such", "than", "that",
	"that's", "the", "their", "theirs", "them", "themselves", "then", "there",
	"there's", "therefore", "these", "they", "they'd", "they'll", "they're",
	"they've", "this", "those", "through", "to", "too", "under", "until", "up", "very",
	"was", "wasn't", "we", "we'd", "we'll", "we're", "we've", "were", "weren't", "what",
	"what's", "when", "when's", "where", "where's", "which", "while", "who", "who's",
	"whom", "why", "why's", "will", "with", "won't", "would", "wouldn't", "www", "you",
	"you'd", "you'll", "you're", "you've", "your", "yours", "yourself", "yourselves",
}
