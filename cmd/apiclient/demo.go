package main

import (
	"fmt"
	"io"
	"net/http"

	"taskhub/models"
	"taskhub/pkg/apiclient"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// demoStep is one request of the scripted walkthrough.
type demoStep struct {
	title  string
	method string
	path   string
	body   any
}

var seedSteps = []demoStep{
	{"POST /usuarios", http.MethodPost, "/usuarios", models.User{Name: "Maria", Email: "maria@email.com", Age: 25}},
	{"POST /tarefas", http.MethodPost, "/tarefas", models.Task{Title: "Comprar alimentos", Description: "Leite, pão, ovos"}},
	{"POST /usuarios (segundo usuário)", http.MethodPost, "/usuarios", models.User{Name: "Grazielli", Email: "grazi@email.com", Age: 23}},
	{"POST /tarefas (segunda tarefa)", http.MethodPost, "/tarefas", models.Task{Title: "Enviar email", Description: "Confirmar reunião", Completed: true}},
}

var querySteps = []demoStep{
	{"GET /usuarios (listar todos)", http.MethodGet, "/usuarios", nil},
	{"GET /tarefas (listar todas)", http.MethodGet, "/tarefas", nil},
	{"GET /usuarios/{email} (buscar por email)", http.MethodGet, "/usuarios/maria@email.com", nil},
	{"GET /tarefas/{id} (buscar por id)", http.MethodGet, "/tarefas/1", nil},
	{"GET /tarefas/{id} (id inexistente)", http.MethodGet, "/tarefas/999", nil},
	{"GET /status", http.MethodGet, "/status", nil},
}

type demoResult struct {
	step demoStep
	resp *apiclient.Response
}

func newDemoCmd(newClient clientFactory) *cobra.Command {
	var parallel bool

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted walkthrough against the server",
		Long: `demo creates two users and two tasks, lists both collections, looks
items up by key (including a missing task) and finally checks /status.
Every exchange is printed with its status code and body.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), newClient(), parallel)
		},
	}

	demoCmd.Flags().BoolVar(&parallel, "parallel", false, "send the seed requests concurrently")

	return demoCmd
}

func runDemo(w io.Writer, client *apiclient.Client, parallel bool) error {
	fmt.Fprintf(w, "--- Iniciando demonstração contra %s ---\n", client.BaseURL())

	seeded, err := runSteps(client, seedSteps, parallel)
	if err != nil {
		return err
	}
	printResults(w, seeded)

	queried, err := runSteps(client, querySteps, false)
	if err != nil {
		return err
	}
	printResults(w, queried)

	fmt.Fprintln(w, "\n--- Demonstração concluída ---")
	return nil
}

// runSteps executes steps and returns their results in step order. In
// parallel mode the requests overlap, so auto-assigned task ids may differ
// from the sequential run.
func runSteps(client *apiclient.Client, steps []demoStep, parallel bool) ([]demoResult, error) {
	results := make([]demoResult, len(steps))

	if !parallel {
		for i, step := range steps {
			resp, err := client.Do(step.method, step.path, step.body)
			if err != nil {
				return nil, err
			}
			results[i] = demoResult{step: step, resp: resp}
		}
		return results, nil
	}

	var g errgroup.Group
	for i, step := range steps {
		g.Go(func() error {
			resp, err := client.Do(step.method, step.path, step.body)
			if err != nil {
				return err
			}
			results[i] = demoResult{step: step, resp: resp}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printResults(w io.Writer, results []demoResult) {
	for _, r := range results {
		fmt.Fprintf(w, "\n--- %s ---\n", r.step.title)
		fmt.Fprintf(w, "  Requisição %s: %s | Código de Resposta: %d\n", r.step.method, r.step.path, r.resp.StatusCode)
		fmt.Fprintf(w, "  Corpo da Resposta: %s\n", r.resp.Body)
	}
}
