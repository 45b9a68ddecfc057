package fallback

import (
	"fmt"
	"strings"
)

const maxQuestions = 5

type catalogEntry struct {
	name      string
	questions []string
}

// The catalog is ordered; for each requested technology the first matching
// entry wins and its whole question list is taken.
var catalog = []catalogEntry{
	{
		name: "Python",
		questions: []string{
			"Explain the difference between lists and tuples in Python.",
			"How do you handle exceptions in Python? Provide an example.",
			"What are decorators in Python? Give a practical example.",
			"Explain the concept of generators in Python.",
			"How does Python's garbage collection work?",
		},
	},
	{
		name: "Django",
		questions: []string{
			"What is Django ORM and how does it work?",
			"Explain Django's MVT (Model-View-Template) architecture.",
			"How do you handle database migrations in Django?",
			"What are Django signals and when would you use them?",
			"Explain Django's authentication system.",
		},
	},
	{
		name: "JavaScript",
		questions: []string{
			"Explain the difference between var, let, and const.",
			"What are closures in JavaScript? Provide an example.",
			"Explain the concept of promises and async/await.",
			"How does JavaScript handle hoisting?",
			"What is the event loop in JavaScript?",
		},
	},
	{
		name: "React",
		questions: []string{
			"Explain the difference between state and props in React.",
			"What are React hooks? Give examples of useState and useEffect.",
			"Explain the concept of virtual DOM in React.",
			"How do you handle component lifecycle in React?",
			"What is the difference between controlled and uncontrolled components?",
		},
	},
	{
		name: "Node.js",
		questions: []string{
			"Explain the event-driven nature of Node.js.",
			"What is the difference between require and import?",
			"How do you handle asynchronous operations in Node.js?",
			"Explain the concept of streams in Node.js.",
			"What are middleware functions in Express.js?",
		},
	},
}

// Questions returns pre-written interview questions for the requested tech
// stack, at most five. Technologies are matched against the catalog by
// case-insensitive substring containment in either direction; technologies
// without a catalog entry get generic templated questions instead.
func Questions(techStack []string) []string {
	questions := make([]string, 0, maxQuestions)

	for _, tech := range techStack {
		techLower := strings.ToLower(tech)

		matched := false
		for _, entry := range catalog {
			key := strings.ToLower(entry.name)
			if strings.Contains(techLower, key) || strings.Contains(key, techLower) {
				questions = append(questions, entry.questions...)
				matched = true
				break
			}
		}

		if !matched {
			questions = append(questions, genericQuestions(tech)...)
		}
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

func genericQuestions(tech string) []string {
	return []string{
		fmt.Sprintf("Explain the core concepts of %s.", tech),
		fmt.Sprintf("What are the best practices for %s?", tech),
		fmt.Sprintf("How would you troubleshoot common issues in %s?", tech),
		fmt.Sprintf("What are the key features of %s?", tech),
		fmt.Sprintf("How would you optimize performance in %s?", tech),
	}
}
