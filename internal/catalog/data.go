package catalog

import "github.com/vanshshar/QuizMaster/internal/domain"

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(builtin)
}

var builtin = []domain.Quiz{
	{
		ID:          "javascript",
		Title:       "JavaScript Fundamentals",
		Description: "Test your knowledge of core JavaScript concepts",
		Icon:        "💻",
		Questions: []domain.Question{
			{
				ID:           1,
				Prompt:       "What is the output of: typeof null?",
				Options:      []string{"null", "undefined", "object", "number"},
				CorrectIndex: 2,
				Explanation:  `typeof null returns "object" due to a legacy bug in JavaScript that has been kept for compatibility reasons.`,
			},
			{
				ID:           2,
				Prompt:       "Which method is used to add elements to the end of an array?",
				Options:      []string{"push()", "pop()", "shift()", "unshift()"},
				CorrectIndex: 0,
				Explanation:  "The push() method adds one or more elements to the end of an array and returns the new length.",
			},
			{
				ID:           3,
				Prompt:       `What does the "===" operator do?`,
				Options:      []string{"Compares values only", "Compares types only", "Compares both value and type", "Assigns a value"},
				CorrectIndex: 2,
				Explanation:  "The strict equality operator (===) checks both the value and the type without type coercion.",
			},
			{
				ID:           4,
				Prompt:       "Which keyword is used to declare a block-scoped variable?",
				Options:      []string{"var", "let", "const", "Both let and const"},
				CorrectIndex: 3,
				Explanation:  "Both let and const are block-scoped. var is function-scoped, while let and const are block-scoped.",
			},
			{
				ID:     5,
				Prompt: "What is a closure in JavaScript?",
				Options: []string{
					"A function with no return value",
					"A function that has access to its outer function scope",
					"A method to close browser windows",
					"A way to end a loop",
				},
				CorrectIndex: 1,
				Explanation:  "A closure is a function that has access to variables in its outer (enclosing) lexical scope, even after the outer function has returned.",
			},
			{
				ID:           6,
				Prompt:       "What will console.log(0.1 + 0.2 === 0.3) output?",
				Options:      []string{"true", "false", "undefined", "NaN"},
				CorrectIndex: 1,
				Explanation:  "Due to floating-point precision issues, 0.1 + 0.2 equals 0.30000000000000004, not exactly 0.3.",
			},
			{
				ID:           7,
				Prompt:       "Which array method creates a new array with all elements that pass a test?",
				Options:      []string{"map()", "filter()", "reduce()", "forEach()"},
				CorrectIndex: 1,
				Explanation:  "The filter() method creates a new array with all elements that pass the test implemented by the provided function.",
			},
			{
				ID:     8,
				Prompt: `What is the purpose of the "use strict" directive?`,
				Options: []string{
					"Makes code run faster",
					"Enables strict mode for safer JavaScript",
					"Declares strict types",
					"Forces type checking",
				},
				CorrectIndex: 1,
				Explanation:  `"use strict" enables strict mode, which catches common coding errors and prevents the use of problematic JavaScript features.`,
			},
		},
	},
	{
		ID:          "react",
		Title:       "React Essentials",
		Description: "Master the fundamentals of React.js",
		Icon:        "⚛️",
		Questions: []domain.Question{
			{
				ID:     1,
				Prompt: "What is JSX?",
				Options: []string{
					"A JavaScript library",
					"A syntax extension for JavaScript",
					"A CSS framework",
					"A database query language",
				},
				CorrectIndex: 1,
				Explanation:  "JSX is a syntax extension for JavaScript that allows you to write HTML-like code in your JavaScript files.",
			},
			{
				ID:           2,
				Prompt:       "Which hook is used to manage state in functional components?",
				Options:      []string{"useEffect", "useState", "useContext", "useReducer"},
				CorrectIndex: 1,
				Explanation:  "useState is the primary hook for managing state in functional React components.",
			},
			{
				ID:     3,
				Prompt: "What is the purpose of useEffect?",
				Options: []string{
					"To manage component state",
					"To perform side effects in functional components",
					"To create context",
					"To optimize rendering",
				},
				CorrectIndex: 1,
				Explanation:  "useEffect allows you to perform side effects like data fetching, subscriptions, or manually changing the DOM in functional components.",
			},
			{
				ID:     4,
				Prompt: "What does React.memo() do?",
				Options: []string{
					"Memoizes component state",
					"Prevents unnecessary re-renders of components",
					"Stores data in memory",
					"Creates context providers",
				},
				CorrectIndex: 1,
				Explanation:  "React.memo() is a higher order component that memoizes a component, preventing re-renders if props haven't changed.",
			},
			{
				ID:     5,
				Prompt: "What is the Virtual DOM?",
				Options: []string{
					"A copy of the real DOM kept in memory",
					"A browser API",
					"A CSS concept",
					"A database structure",
				},
				CorrectIndex: 0,
				Explanation:  "The Virtual DOM is a lightweight copy of the actual DOM kept in memory. React uses it to optimize updates to the real DOM.",
			},
			{
				ID:           6,
				Prompt:       "How do you pass data from parent to child component?",
				Options:      []string{"Using state", "Using props", "Using context", "Using refs"},
				CorrectIndex: 1,
				Explanation:  "Props are used to pass data from parent components to child components in React.",
			},
			{
				ID:     7,
				Prompt: "What is the correct way to update state that depends on previous state?",
				Options: []string{
					"setState(newValue)",
					"setState(prevState => newValue)",
					"setState(prevState => prevState + 1)",
					"Both B and C",
				},
				CorrectIndex: 3,
				Explanation:  "When updating state based on previous state, you should use the functional form: setState(prevState => ...) to ensure you're working with the latest state.",
			},
			{
				ID:     8,
				Prompt: "What is prop drilling?",
				Options: []string{
					"A performance optimization technique",
					"Passing props through multiple component layers",
					"A debugging method",
					"A state management pattern",
				},
				CorrectIndex: 1,
				Explanation:  "Prop drilling is when you pass props through multiple layers of components to reach a deeply nested component that needs the data.",
			},
		},
	},
	{
		ID:          "general",
		Title:       "General Knowledge",
		Description: "Test your general knowledge across various topics",
		Icon:        "🌍",
		Questions: []domain.Question{
			{
				ID:           1,
				Prompt:       "What is the largest planet in our solar system?",
				Options:      []string{"Mars", "Saturn", "Jupiter", "Neptune"},
				CorrectIndex: 2,
				Explanation:  "Jupiter is the largest planet in our solar system, with a mass more than twice that of all other planets combined.",
			},
			{
				ID:           2,
				Prompt:       "Who painted the Mona Lisa?",
				Options:      []string{"Vincent van Gogh", "Leonardo da Vinci", "Pablo Picasso", "Michelangelo"},
				CorrectIndex: 1,
				Explanation:  "Leonardo da Vinci painted the Mona Lisa in the early 16th century. It is one of the most famous paintings in the world.",
			},
			{
				ID:           3,
				Prompt:       "What is the capital of Australia?",
				Options:      []string{"Sydney", "Melbourne", "Canberra", "Brisbane"},
				CorrectIndex: 2,
				Explanation:  "Canberra is the capital city of Australia. Many people mistakenly think it's Sydney or Melbourne.",
			},
			{
				ID:           4,
				Prompt:       "How many continents are there?",
				Options:      []string{"5", "6", "7", "8"},
				CorrectIndex: 2,
				Explanation:  "There are 7 continents: Africa, Antarctica, Asia, Australia, Europe, North America, and South America.",
			},
			{
				ID:           5,
				Prompt:       "What is the smallest unit of life?",
				Options:      []string{"Atom", "Molecule", "Cell", "Organ"},
				CorrectIndex: 2,
				Explanation:  "The cell is the smallest unit of life. All living organisms are composed of one or more cells.",
			},
			{
				ID:           6,
				Prompt:       "In what year did World War II end?",
				Options:      []string{"1943", "1944", "1945", "1946"},
				CorrectIndex: 2,
				Explanation:  "World War II ended in 1945 with the surrender of Japan in September, following Germany's surrender in May.",
			},
			{
				ID:           7,
				Prompt:       "What is the chemical symbol for gold?",
				Options:      []string{"Go", "Gd", "Au", "Ag"},
				CorrectIndex: 2,
				Explanation:  `The chemical symbol for gold is Au, derived from the Latin word "aurum" meaning gold.`,
			},
			{
				ID:           8,
				Prompt:       "How many bones are in the adult human body?",
				Options:      []string{"186", "206", "226", "246"},
				CorrectIndex: 1,
				Explanation:  "The adult human body has 206 bones. Babies are born with about 270 bones, but many fuse together as they grow.",
			},
		},
	},
	{
		ID:          "webdev",
		Title:       "Web Development",
		Description: "Challenge yourself with web development concepts",
		Icon:        "🌐",
		Questions: []domain.Question{
			{
				ID:     1,
				Prompt: "What does HTML stand for?",
				Options: []string{
					"Hyper Text Markup Language",
					"High Tech Modern Language",
					"Home Tool Markup Language",
					"Hyperlinks and Text Markup Language",
				},
				CorrectIndex: 0,
				Explanation:  "HTML stands for Hyper Text Markup Language. It is the standard markup language for creating web pages.",
			},
			{
				ID:           2,
				Prompt:       "Which CSS property is used to change text color?",
				Options:      []string{"text-color", "font-color", "color", "text-style"},
				CorrectIndex: 2,
				Explanation:  `The "color" property in CSS is used to set the color of text.`,
			},
			{
				ID:     3,
				Prompt: "What is the purpose of the <head> tag in HTML?",
				Options: []string{
					"To display the main content",
					"To contain metadata about the document",
					"To create headers",
					"To define the footer",
				},
				CorrectIndex: 1,
				Explanation:  "The <head> tag contains metadata, title, links to stylesheets, scripts, and other information about the HTML document.",
			},
			{
				ID:           4,
				Prompt:       "Which HTTP method is used to submit form data?",
				Options:      []string{"GET", "POST", "PUT", "Both GET and POST"},
				CorrectIndex: 3,
				Explanation:  "Both GET and POST can be used to submit form data. GET appends data to the URL, while POST sends it in the request body.",
			},
			{
				ID:     5,
				Prompt: "What does CSS stand for?",
				Options: []string{
					"Computer Style Sheets",
					"Cascading Style Sheets",
					"Creative Style Sheets",
					"Colorful Style Sheets",
				},
				CorrectIndex: 1,
				Explanation:  "CSS stands for Cascading Style Sheets. It is used to style and layout web pages.",
			},
			{
				ID:           6,
				Prompt:       "Which property is used to change the background color?",
				Options:      []string{"bgcolor", "background-color", "color-background", "bg-color"},
				CorrectIndex: 1,
				Explanation:  `The "background-color" property is used to set the background color of an element in CSS.`,
			},
			{
				ID:           7,
				Prompt:       "What is the correct HTML element for the largest heading?",
				Options:      []string{"<heading>", "<h6>", "<h1>", "<head>"},
				CorrectIndex: 2,
				Explanation:  "<h1> defines the largest and most important heading. Headings range from <h1> (largest) to <h6> (smallest).",
			},
			{
				ID:           8,
				Prompt:       "Which tag is used to create a hyperlink?",
				Options:      []string{"<link>", "<a>", "<href>", "<hyperlink>"},
				CorrectIndex: 1,
				Explanation:  "The <a> (anchor) tag is used to create hyperlinks in HTML.",
			},
		},
	},
}
