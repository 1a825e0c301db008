package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aussiebroadwan/campus/internal/campus/service"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	stdinIsTerminal  = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

var userInput service.RegisterInput

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account, prompting for its password",
	Long: `Create a student, faculty or admin account. The password is read from the
terminal without echo, or from the first line of stdin when it is not a terminal.

Example:
  campusctl user create --email dean@college.edu --username dean \
    --role admin --admin-id A-001 --admin-level college`,
	Args: cobra.NoArgs,
	RunE: runUserCreate,
}

func init() {
	f := userCreateCmd.Flags()
	f.StringVar(&userInput.Email, "email", "", "email address (required)")
	f.StringVar(&userInput.Username, "username", "", "display name (required)")
	f.StringVar(&userInput.Role, "role", "", "student, faculty or admin (required)")
	f.StringVar(&userInput.Department, "department", "", "department code")
	f.StringVar(&userInput.StudentID, "student-id", "", "student id (students)")
	f.IntVar(&userInput.YearOfStudy, "year", 0, "year of study (students)")
	f.StringVar(&userInput.FacultyID, "faculty-id", "", "faculty id (faculty)")
	f.StringVar(&userInput.Position, "position", "", "position (faculty)")
	f.StringVar(&userInput.AdminID, "admin-id", "", "admin id (admins)")
	f.StringVar(&userInput.AdminLevel, "admin-level", "", "department or college (admins)")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("role")

	userCmd.AddCommand(userCreateCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	auth := &service.AuthService{Store: e.store, Catalog: e.catalog}
	in := userInput
	in.Password = password
	user, err := auth.Register(cmd.Context(), service.Operator, in)
	if err != nil {
		return plainError(err)
	}
	printf(cmd, "created %s %s (%s)\n", user.Role, user.Email, user.ID)
	return nil
}

func readPassword(cmd *cobra.Command) (string, error) {
	var pwd string
	if stdinIsTerminal() {
		fmt.Fprint(cmd.ErrOrStderr(), "Enter password: ")
		b, err := readPasswordFunc(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		pwd = string(b)
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading password from stdin: %w", err)
		}
		pwd = strings.TrimRight(line, "\r\n")
	}
	if strings.TrimSpace(pwd) == "" {
		return "", errors.New("password must not be empty")
	}
	return pwd, nil
}
