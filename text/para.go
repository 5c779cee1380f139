package text

import (
	"strings"
)

// Para accumulates sentences of prose one fragment at a time.
type Para struct {
	sentences []string
}

func (p *Para) Text() string {
	p.FinishSentence()
	return strings.TrimSpace(strings.Join(p.sentences, " "))
}

// Continue continues an existing sentence
func (p *Para) Continue(ss ...string) {
	if len(ss) == 0 {
		return
	}
	s := p.join(ss...)
	if s == "" {
		return
	}

	current := ""
	if len(p.sentences) == 0 {
		p.sentences = append(p.sentences, "")
	} else {
		current = p.sentences[len(p.sentences)-1]
	}

	if current == "" {
		current = UpperFirst(s)
	} else if !strings.HasSuffix(current, " ") || !strings.HasPrefix(s, " ") {
		current += " "
		current += s
	}

	p.sentences[len(p.sentences)-1] = current
}

func (p *Para) join(ss ...string) string {
	var str string
	for i, s := range ss {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if i != 0 {
			str += " "
		}
		str += s
	}
	return str
}

// StartSentence begins a new sentence by finishing any existing sentence and combining
// the strings into text which becomes the current sentence. No punctuation or
// formatting is performed on the new sentence.
func (p *Para) StartSentence(ss ...string) {
	p.FinishSentence()
	p.Continue(ss...)
}

// FinishSentence completes the current sentence. It combines the supplied strings into
// text which are added the current sentence and it then terminates the sentence with a
// full stop and leaves the paragraph ready for the next one.
func (p *Para) FinishSentence(ss ...string) {
	p.Continue(ss...)
	p.FinishSentenceWithTerminator(".")
}

// FinishSentenceWithTerminator completes the current sentence, terminating it with t
// and leaves the paragraph ready for the next one.
func (p *Para) FinishSentenceWithTerminator(t string) {
	if len(p.sentences) == 0 {
		return
	}

	current := p.sentences[len(p.sentences)-1]
	current = strings.TrimSpace(current)

	if current == "" {
		p.sentences[len(p.sentences)-1] = current
		return
	}

	current = strings.TrimRight(current, ",;:-!?.")
	current += t

	p.sentences[len(p.sentences)-1] = current
	p.sentences = append(p.sentences, "")
}

// AppendClause appends a clause to the current sentence, preceding it with a comma
// if necessary.
func (p *Para) AppendClause(ss ...string) {
	clause := p.join(ss...)
	if len(clause) == 0 {
		return
	}

	if len(p.sentences) == 0 {
		p.Continue(clause)
		return
	}
	current := p.sentences[len(p.sentences)-1]
	if len(current) == 0 {
		current = UpperFirst(clause)
		p.sentences[len(p.sentences)-1] = current
		return
	}

	if !strings.HasSuffix(current, ",") {
		current += ","
	}
	current += " " + clause
	p.sentences[len(p.sentences)-1] = current
}
