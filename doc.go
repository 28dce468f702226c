// Package semchunk splits text into token-bounded chunks while preferring
// semantically meaningful boundaries (paragraphs, sentences, words) over
// arbitrary character cuts.
//
// A Chunker is configured with a chunk size (the maximum number of tokens per
// chunk) and a TokenCounter. The counter is an opaque capability: it may wrap
// a model tokenizer, a remote service, or a trivial word count. Within a
// single Chunk call every distinct span of the input is counted at most once.
//
//	counter := semchunk.CounterFunc(func(s string) (int, error) {
//		return len(strings.Fields(s)), nil
//	})
//	chunker, err := semchunk.New(4, counter)
//	if err != nil {
//		// handle err
//	}
//	chunks, err := chunker.Chunk("The quick brown fox jumps over the lazy dog.")
//	// chunks: ["The quick brown fox", "jumps over the", "lazy dog."]
//
// The counter package provides ready-made counters backed by tiktoken and
// UAX #29 segmentation. The document package feeds extracted file, HTTP, PDF,
// HTML and DOCX content into a Chunker.
package semchunk
