package cyclecipher

// Cipher binds a parsed program to the text mark interface used by callers
// that transform strings before embedding.
type Cipher struct {
	prog Program
}

func New(code string) (*Cipher, error) {
	prog, err := Parse(code)
	if err != nil {
		return nil, err
	}
	return &Cipher{prog: prog}, nil
}

func (c *Cipher) Program() Program { return c.prog }

func (c *Cipher) Encode(src string) (string, error) {
	return c.prog.Encipher(src)
}

func (c *Cipher) Decode(mark string) (string, error) {
	return c.prog.Decipher(mark)
}

// Encipher parses code and enciphers text with it.
func Encipher(text, code string) (string, error) {
	prog, err := Parse(code)
	if err != nil {
		return "", err
	}
	return prog.Encipher(text)
}

// Decipher parses code and reverses Encipher.
func Decipher(text, code string) (string, error) {
	prog, err := Parse(code)
	if err != nil {
		return "", err
	}
	return prog.Decipher(text)
}
