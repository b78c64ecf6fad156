package api

import (
	"html/template"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"voting-dashboard/internal/domain/ballot"
	"voting-dashboard/internal/domain/intake"
)

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"pct":     ballot.FormatPercentage,
	"initial": initial,
}).Parse(dashboardHTML))

type dashboardData struct {
	View  ballot.View
	Form  intake.Draft
	Error string
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, http.StatusOK, "", h.intakeSvc.Status().Draft)
}

func (h *Handler) handleDashboardAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderDashboard(w, http.StatusBadRequest, "invalid form", intake.Draft{})
		return
	}
	// A rejected form is re-rendered with what was typed.
	form := intake.Draft{Name: r.PostFormValue("name"), PhotoURL: r.PostFormValue("photo_url")}
	if _, err := h.intakeSvc.Add(form.Name, form.PhotoURL); err != nil {
		appErr := mapError(err)
		h.renderDashboard(w, appErr.StatusCode(), appErr.Message, form)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleDashboardVote(w http.ResponseWriter, r *http.Request) {
	h.store.Vote(chi.URLParam(r, "id"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderDashboard(w http.ResponseWriter, status int, errMsg string, form intake.Draft) {
	data := dashboardData{
		View:  h.store.Snapshot(),
		Form:  form,
		Error: errMsg,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := dashboardTmpl.Execute(w, data); err != nil {
		slogLogger.Error("render dashboard", "error", err.Error())
	}
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(r)
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Live Voting Dashboard</title>
</head>
<body>
<main>
  <header>
    <h1>Live Voting Dashboard</h1>
    <p>Cast your vote and watch the results in real-time</p>
  </header>
  {{if .Error}}<p class="error" role="alert">{{.Error}}</p>{{end}}
  <form method="post" action="/ui/candidates" class="add-candidate">
    <label for="name">Candidate Name</label>
    <input id="name" name="name" placeholder="Enter candidate name" value="{{.Form.Name}}">
    <label for="photo">Photo URL</label>
    <input id="photo" name="photo_url" placeholder="Enter photo URL" value="{{.Form.PhotoURL}}">
    <button type="submit">Add Candidate</button>
  </form>
  {{with .View.Leader}}
  <section class="leader">
    <h2>Current Leader</h2>
    <img src="{{.PhotoURL}}" alt="{{.Name}}" title="{{initial .Name}}">
    <h3>{{.Name}}</h3>
    <p>{{.Votes}} votes ({{pct .Percentage}}%)</p>
  </section>
  {{end}}
  <section class="candidates">
    {{range .View.Candidates}}
    <article id="candidate-{{.ID}}">
      <img src="{{.PhotoURL}}" alt="{{.Name}}" title="{{initial .Name}}">
      <h3>{{.Name}}</h3>
      <span>{{.Votes}} votes</span> <span>({{pct .Percentage}}%)</span>
      <progress max="100" value="{{.Percentage}}"></progress>
      <form method="post" action="/ui/candidates/{{.ID}}/vote"><button type="submit">Vote</button></form>
    </article>
    {{else}}
    <p class="empty">No candidates yet. Add some candidates to start the voting!</p>
    {{end}}
  </section>
  <footer>{{.View.TotalVotes}} total votes</footer>
</main>
</body>
</html>
`
