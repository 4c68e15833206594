// ABOUTME: Admin CLI for managing portfolio content from the terminal
// ABOUTME: Logs in against the API and keeps the session token on disk

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/lwr/portfolio/internal/client"
	"github.com/lwr/portfolio/internal/session"
)

const banner = `
                    _    __       _ _                       _           _
  _ __   ___  _ __| |_ / _| ___ | (_) ___        __ _  __| |_ __ ___ (_)_ __
 | '_ \ / _ \| '__| __| |_ / _ \| | |/ _ \ _____ / _' |/ _' | '_ ' _ \| | '_ \
 | |_) | (_) | |  | |_|  _| (_) | | | (_) |_____| (_| | (_| | | | | | | | | | |
 | .__/ \___/|_|   \__|_|  \___/|_|_|\___/       \__,_|\__,_|_| |_| |_|_|_| |_|
 |_|
`

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	baseURL := os.Getenv("PORTFOLIO_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	tokenPath, err := session.DefaultTokenPath()
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	tokens := session.NewFileTokenStore(tokenPath)
	c := client.New(baseURL, tokens)
	sess := session.New(c)

	ctx := context.Background()
	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "login":
		err = cmdLogin(ctx, sess)
	case "logout":
		err = cmdLogout(sess)
	case "status":
		err = cmdStatus(ctx, sess, baseURL)
	case "projects":
		err = cmdProjects(ctx, c, args)
	case "reviews":
		err = cmdReviews(ctx, c, args)
	case "contact":
		err = cmdContact(ctx, c, args)
	case "profile":
		err = cmdProfile(ctx, c)
	case "upload":
		err = cmdUpload(ctx, c, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: portfolio-admin <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  login                 Authenticate and store a session token")
	fmt.Println("  logout                Drop the stored session token")
	fmt.Println("  status                Show whether the stored session is still valid")
	fmt.Println("  projects              List projects")
	fmt.Println("  projects delete <id>  Delete a project")
	fmt.Println("  reviews               List reviews")
	fmt.Println("  reviews delete <id>   Delete a review")
	fmt.Println("  contact               List contact messages")
	fmt.Println("  contact read <id>     Mark a message as read")
	fmt.Println("  contact delete <id>   Delete a message")
	fmt.Println("  profile               Show the site profile")
	fmt.Println("  upload <file>         Upload an image, print its URL")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  PORTFOLIO_URL         API base URL (default: http://localhost:8080)")
	fmt.Println()
}

func cmdLogin(ctx context.Context, sess *session.Session) error {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	ok, err := sess.Login(ctx, string(password))
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if !ok {
		return fmt.Errorf("wrong password")
	}

	color.Green("Logged in.")
	return nil
}

func cmdLogout(sess *session.Session) error {
	sess.Logout()
	fmt.Println("Logged out.")
	return nil
}

func cmdStatus(ctx context.Context, sess *session.Session, baseURL string) error {
	sess.Init(ctx)

	fmt.Printf("Server: %s\n", baseURL)
	if sess.IsAdmin() {
		color.Green("Session: valid")
	} else {
		color.Yellow("Session: none (run 'portfolio-admin login')")
	}
	return nil
}

func cmdProjects(ctx context.Context, c *client.Client, args []string) error {
	if len(args) >= 2 && args[0] == "delete" {
		if err := c.Projects.Delete(ctx, args[1]); err != nil {
			return describeAuthError(err)
		}
		fmt.Println("Deleted.")
		return nil
	}

	projects, err := c.Projects.List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tFEATURED\tDATE")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", p.ID, p.Title, p.Category, p.Featured, p.Date)
	}
	return w.Flush()
}

func cmdReviews(ctx context.Context, c *client.Client, args []string) error {
	if len(args) >= 2 && args[0] == "delete" {
		if err := c.Reviews.Delete(ctx, args[1]); err != nil {
			return describeAuthError(err)
		}
		fmt.Println("Deleted.")
		return nil
	}

	reviews, err := c.Reviews.List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tRATING")
	for _, r := range reviews {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.ID, r.Name, r.Role, r.Rating)
	}
	return w.Flush()
}

func cmdContact(ctx context.Context, c *client.Client, args []string) error {
	if len(args) >= 2 {
		switch args[0] {
		case "read":
			if err := c.MarkContactRead(ctx, args[1]); err != nil {
				return describeAuthError(err)
			}
			fmt.Println("Marked as read.")
			return nil
		case "delete":
			if err := c.DeleteContact(ctx, args[1]); err != nil {
				return describeAuthError(err)
			}
			fmt.Println("Deleted.")
			return nil
		}
	}

	msgs, err := c.ListContact(ctx)
	if err != nil {
		return describeAuthError(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFROM\tEMAIL\tSUBJECT\tREAD")
	for _, m := range msgs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", m.ID, m.Name, m.Email, m.Subject, m.Read)
	}
	return w.Flush()
}

func cmdProfile(ctx context.Context, c *client.Client) error {
	p, err := c.GetProfile(ctx)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Profile")
	cyan.Println("  -------")
	fmt.Printf("  Name:   %s\n", p.Name)
	fmt.Printf("  Title:  %s\n", p.Title)
	fmt.Printf("  Email:  %s\n", p.Email)
	if p.University != "" {
		fmt.Printf("  Study:  %s, %s\n", p.Faculty, p.University)
	}
	fmt.Println()
	return nil
}

func cmdUpload(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: portfolio-admin upload <file>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	url, err := c.Upload(ctx, f.Name(), f)
	if err != nil {
		return describeAuthError(err)
	}

	fmt.Println(url)
	return nil
}

// describeAuthError turns a 401 into a hint to log in again. The client
// has already purged the dead token by the time this runs.
func describeAuthError(err error) error {
	if client.IsUnauthorized(err) {
		return fmt.Errorf("not authorized - run 'portfolio-admin login' (%w)", err)
	}
	return err
}
