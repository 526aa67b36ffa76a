package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	defaultTarget = "http://localhost:8080"
	rps           = 20
	duration      = 3 * time.Minute
	issues        = 50
	repository    = "rust-lang/rfcs"
	teamLabel     = "T-lang"
)

// Участники T-lang из rfcbot.toml и несколько посторонних пользователей
var (
	members   = []string{"nikomatsakis", "joshtriplett", "scottmcm"}
	outsiders = []string{"octocat", "hubot", "monalisa"}
	concerns  = []string{"naming", "edition migration", "unresolved questions"}
)

type GitHubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

type IssueRef struct {
	Repository string   `json:"repository"`
	Number     int32    `json:"number"`
	Labels     []string `json:"labels"`
}

type IncomingComment struct {
	CommentID int64      `json:"comment_id"`
	Issue     IssueRef   `json:"issue"`
	Author    GitHubUser `json:"author"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
}

type ProcessRequest struct {
	Comments []IncomingComment `json:"comments"`
}

var (
	targetHost = defaultTarget
	commentSeq atomic.Int64
	userIDs    = map[string]int64{}
	httpc      = &http.Client{Timeout: 10 * time.Second}
)

func postJSON(url string, body any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func newComment(login string, number int32, body string) IncomingComment {
	return IncomingComment{
		CommentID: commentSeq.Add(1),
		Issue: IssueRef{
			Repository: repository,
			Number:     number,
			Labels:     []string{teamLabel},
		},
		Author:    GitHubUser{ID: userIDs[login], Login: login},
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}

// Seed
func seedData() error {
	log.Println("Seeding: proposing FCP on issues...")

	for n := 1; n <= issues; n++ {
		proposer := members[rand.Intn(len(members))]
		batch := ProcessRequest{Comments: []IncomingComment{
			newComment(proposer, int32(n), "@rfcbot fcp merge"),
		}}

		status, err := postJSON(targetHost+"/comments/process", batch)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN comments/process returned %d\n", status)
		}
		time.Sleep(15 * time.Millisecond)
	}

	log.Printf("Seed completed: issues=%d\n", issues)
	return nil
}

func randomBody() string {
	switch r := rand.Float64(); {
	case r < 0.35:
		return "@rfcbot reviewed"
	case r < 0.50:
		return "@rfcbot concern " + concerns[rand.Intn(len(concerns))]
	case r < 0.65:
		return "@rfcbot: resolved " + concerns[rand.Intn(len(concerns))]
	case r < 0.70:
		return "@rfcbot f? @" + outsiders[rand.Intn(len(outsiders))]
	case r < 0.72:
		return "@rfcbot fcp cancel"
	case r < 0.75:
		return "@rfcbot fcp postpone"
	default:
		return "Thanks, this looks reasonable to me."
	}
}

// Targeter
func makeTargeter() vegeta.Targeter {
	everyone := append(append([]string{}, members...), outsiders...)

	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 60% POST comments/process
		if r < 0.60 {
			number := int32(rand.Intn(issues) + 1)
			batch := ProcessRequest{}
			for i := rand.Intn(3) + 1; i > 0; i-- {
				login := everyone[rand.Intn(len(everyone))]
				batch.Comments = append(batch.Comments, newComment(login, number, randomBody()))
			}
			body, _ := json.Marshal(batch)
			t.Method = http.MethodPost
			t.URL = targetHost + "/comments/process"
			t.Body = body
			t.Header = map[string][]string{"Content-Type": {"application/json"}}
			return nil
		}

		// 30% GET proposal/get (в чистой базе id issue совпадают с номерами)
		if r < 0.90 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/proposal/get?issue_id=%d", targetHost, rand.Intn(issues)+1)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 8% GET repository/behavior
		if r < 0.98 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/repository/behavior?repository=%s", targetHost, repository)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 2% POST nag/evaluate
		t.Method = http.MethodPost
		t.URL = targetHost + "/nag/evaluate"
		t.Body = nil
		t.Header = nil
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	for code, count := range metrics.StatusCodes {
		fmt.Printf("Status %s: %d\n", code, count)
	}
}

func main() {
	if target := os.Getenv("LOADTEST_TARGET"); target != "" {
		targetHost = target
	}

	for i, login := range append(append([]string{}, members...), outsiders...) {
		userIDs[login] = int64(1000 + i)
	}
	commentSeq.Store(time.Now().UnixNano() / int64(time.Millisecond))

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
