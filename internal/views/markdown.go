package views

import "fmt"

// AboutMarkdown is the About and How to Play text shown in the help overlay.
const AboutMarkdown = `# plantd

Grow a plant by getting things done. Every task you complete feeds your garden.

## How to play

1. Choose a plant. Some are easier to grow than others.
2. Add tasks with **a**, or type ` + "`/add water the ferns due:2026-05-10T09:00`" + `.
3. Mark tasks done with **space**. Your plant moves through five stages:
   seed, sprout, small plant, mature plant and full bloom.
4. Finish every task to reach full bloom. Adding a new task sends it back to growing.
5. Tasks with a due time raise one alert when the deadline passes.

## Commands

| command | effect |
|---|---|
| ` + "`/add <text> [due:<time>]`" + ` | add a task |
| ` + "`/toggle <n or id>`" + ` | complete or reopen a task |
| ` + "`/delete <n or id>`" + ` | remove a task |
| ` + "`/nodue <n or id>`" + ` | drop a task's deadline |
| ` + "`/chore <n>`" + ` | add one of the quick chores |
| ` + "`/plant <id>`" + ` | start over with another plant |
| ` + "`/history [added/completed/due]`" + ` | show this session's events |
| ` + "`/reset`" + ` | clear the garden |
`

type PlantInfo struct {
	Name       string
	Type       string
	Difficulty string
}

func PlantMarkdown(p PlantInfo) string {
	return fmt.Sprintf("## %s\n\n- **Type:** %s\n- **Difficulty:** %s\n\nPress **enter** to plant it.\n", p.Name, p.Type, p.Difficulty)
}
