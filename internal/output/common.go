package output

const (
	FormatText    = "text"
	FormatFASTA   = "fasta"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// Formats lists every output format in the order shown by --help.
var Formats = []string{FormatText, FormatFASTA, FormatJSON, FormatJSONL, FormatYAML, FormatMsgpack}

// TSV header rows for text output, one per result type.
// Keep these as the single source of truth; all writers should use them.
const (
	TranslationHeader = "source_file\tsequence_id\ttable\tframe\tprotein"
	RevCompHeader     = "source_file\tsequence_id\tseq"
	CanonicalHeader   = "source_file\tsequence_id\tcanonical\tdigest"
	ExpansionsHeader  = "source_file\tsequence_id\tcount\tindex\texpansion"
	TableHeader       = "id\tname"
)
