package tutor

// trigger maps message keywords to canned replies per age band.
// Triggers are checked in order; first match wins.
type trigger struct {
	keywords   []string
	junior     string
	teen       string
	suggestion *Suggestion
}

var triggers = []trigger{
	{
		keywords: []string{"error", "bug"},
		junior:   "Uh oh, a bug! 🐛 Don't worry, every coder finds bugs - that's how we learn! Read your code line by line out loud and see if anything looks different from what you wanted.",
		teen:     "Errors are information, not failure. Read the error message from the top: it usually names the file and line. Check that line first, then work backwards through what feeds into it.",
		suggestion: &Suggestion{
			Kind:        "tip",
			Title:       "Debugging checklist",
			Description: "Read the error message, find the line it points to, and check spelling, brackets and quotes around it.",
		},
	},
	{
		keywords: []string{"loop"},
		junior:   "Loops are like doing your favourite dance move again and again! 🔁 A loop tells the computer to repeat something until you say stop.",
		teen:     "A loop repeats a block of code. Use `for` when you know how many times to repeat, and `while` when you repeat until a condition changes. Watch the exit condition - that's where infinite loops come from.",
		suggestion: &Suggestion{
			Kind:        "example",
			Title:       "A simple for loop",
			Description: "Print the numbers 1 to 5.",
			SampleCode:  "for i in range(1, 6):\n    print(i)",
		},
	},
	{
		keywords: []string{"function"},
		junior:   "A function is like a magic spell! ✨ You give it a name, teach it a trick once, and then you can use the trick whenever you say its name.",
		teen:     "A function groups code behind a name so you can reuse it. Give it a clear name, pass what it needs as parameters, and return the result instead of printing inside it.",
		suggestion: &Suggestion{
			Kind:        "example",
			Title:       "Define and call a function",
			Description: "A function that greets whoever you pass in.",
			SampleCode:  "def greet(name):\n    return f\"Hello, {name}!\"\n\nprint(greet(\"Ada\"))",
		},
	},
	{
		keywords: []string{"variable"},
		junior:   "A variable is a box with a name on it! 📦 You can put a number or a word inside, and the computer remembers it for you.",
		teen:     "A variable binds a name to a value. Pick names that say what the value means - `score` beats `x` - and keep each variable doing one job.",
	},
	{
		keywords: []string{"array", "list"},
		junior:   "A list is like a train! 🚂 Each wagon carries one thing, and the wagons stay in order so you can count along them.",
		teen:     "Arrays/lists hold items in order, indexed from 0. Most bugs here are off-by-one: remember the last index is length minus one.",
		suggestion: &Suggestion{
			Kind:        "example",
			Title:       "Working with a list",
			Description: "Create a list and loop over it.",
			SampleCode:  "animals = [\"cat\", \"dog\", \"owl\"]\nfor a in animals:\n    print(a)",
		},
	},
	{
		keywords: []string{"help", "stuck"},
		junior:   "It's okay to be stuck - that means your brain is growing! 🧠 Take a deep breath and tell me which part feels tricky, and we'll solve it together.",
		teen:     "Being stuck is part of the job. Break the problem into the smallest step you can describe in one sentence, get that working, then take the next step. What's the smallest piece you could try?",
	},
}
