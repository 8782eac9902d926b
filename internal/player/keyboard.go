package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const notANumberMessage = "Please enter a number:"

var ErrInputClosed = errors.New("input closed")

// KeyboardInput reads one integer per line.
type KeyboardInput struct {
	scanner *bufio.Scanner
	output  io.Writer
}

func NewKeyboardInput(input io.Reader, output io.Writer) *KeyboardInput {
	return &KeyboardInput{
		scanner: bufio.NewScanner(input),
		output:  output,
	}
}

// ReadCoordinate skips lines that are not integers and fails once the input is exhausted.
func (that *KeyboardInput) ReadCoordinate() (int, error) {
	for that.scanner.Scan() {
		value, err := strconv.Atoi(strings.TrimSpace(that.scanner.Text()))
		if err != nil {
			fmt.Fprintln(that.output, notANumberMessage)
			continue
		}

		return value, nil
	}

	if err := that.scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan input: %w", err)
	}

	return 0, ErrInputClosed
}
