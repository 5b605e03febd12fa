package words

// englishStopWords is the built-in filter list for Count. Deliberately
// small: it covers function words that dominate any English text and
// would otherwise crowd out the interesting vocabulary.
var englishStopWords = []string{
	"a", "about", "after", "all", "also", "an", "and", "any", "are", "as",
	"at", "be", "because", "been", "but", "by", "can", "could", "did",
	"do", "does", "for", "from", "had", "has", "have", "he", "her",
	"here", "him", "his", "how", "i", "if", "in", "into", "is", "it",
	"its", "just", "me", "more", "most", "my", "no", "not", "of", "on",
	"one", "only", "or", "other", "our", "out", "over", "she", "so",
	"some", "than", "that", "the", "their", "them", "then", "there",
	"these", "they", "this", "to", "up", "us", "was", "we", "were",
	"what", "when", "where", "which", "who", "will", "with", "would",
	"you", "your",
}
