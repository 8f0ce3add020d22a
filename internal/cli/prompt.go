package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/howeyc/gopass"
	"github.com/spf13/cobra"
)

var readPassword = gopass.GetPasswd

func prompt(cmd *cobra.Command, label string, echo bool) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label+": ")
	if echo {
		return readLine(cmd.InOrStdin())
	}
	passBytes, err := readPassword()
	return string(passBytes), err
}

// 플래그로 주지 않은 값은 터미널에서 묻는다
func promptMissing(cmd *cobra.Command, flag, label string, echo bool, dst *string) error {
	if cmd.Flags().Changed(flag) {
		return nil
	}
	v, err := prompt(cmd, label, echo)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// 한 바이트씩 읽어서 다음 프롬프트의 입력을 먹지 않는다
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			sb.WriteByte(buf[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.TrimRight(sb.String(), "\r"), nil
}
