package segment

// Limits bounds segment length in runes.
type Limits struct {
	Single int // longest text sent as one part
	Multi  int // longest part of a multipart text
}

// SMS are the plain-text limits of a GSM short message. They assume every
// rune is in the GSM-7 default alphabet; each rune is counted as one unit.
var SMS = Limits{Single: 160, Multi: 153}

// UCS2 are the limits of a short message carrying text outside GSM-7.
var UCS2 = Limits{Single: 70, Multi: 67}

func (l Limits) normalized() Limits {
	if l.Single <= 0 {
		l.Single = SMS.Single
	}
	if l.Multi <= 0 || l.Multi > l.Single {
		l.Multi = l.Single
	}
	return l
}

// Split cuts text into ordered segments within l. It always returns at least
// one segment.
func Split(text string, l Limits) []string {
	l = l.normalized()
	runes := []rune(text)
	if len(runes) <= l.Single {
		return []string{text}
	}
	out := make([]string, 0, (len(runes)+l.Multi-1)/l.Multi)
	for len(runes) > 0 {
		n := min(l.Multi, len(runes))
		out = append(out, string(runes[:n]))
		runes = runes[n:]
	}
	return out
}
