package question

// SolutionDefault is the only solution shipped with the CLI.
const SolutionDefault = "fx-solution-default"

// SamplesArchiveURL is the archive every bundled sample is extracted from.
const SamplesArchiveURL = "https://github.com/OfficeDev/TeamsFx-Samples/archive/refs/heads/main.zip"

var (
	ScratchOptionYes = OptionItem{
		ID:     "yes",
		Label:  "$(new-folder) Create a new Teams app",
		Detail: "Use the Teams Toolkit to create a new application.",
	}

	ScratchOptionNo = OptionItem{
		ID:     "no",
		Label:  "$(heart) Start from a sample",
		Detail: "Use an existing sample as a starting point for your new application.",
	}
)

var sampleCatalog = []OptionItem{
	{
		ID:     "in-meeting-app",
		Label:  "In-meeting App",
		Detail: "In-meeting app is a hello-world template which shows how to build an app working in the context of a Teams meeting.",
		Data:   SamplesArchiveURL,
	},
	{
		ID:     "todo-list-with-Azure-backend",
		Label:  "Todo List with backend on Azure",
		Detail: "Todo List provides easy way to manage to-do items in Teams Client.",
		Data:   SamplesArchiveURL,
	},
	{
		ID:     "todo-list-SPFx",
		Label:  "Todo List with SPFx",
		Detail: "Todo List with SPFx is a Todo List for individual user to manage his/her personal to-do items in the format of an app installed on Teams client.",
		Data:   SamplesArchiveURL,
	},
	{
		ID:     "share-now",
		Label:  "Share Now",
		Detail: "The Share Now promotes the exchange of information between colleagues by enabling users to share content within the Teams environment.",
		Data:   SamplesArchiveURL,
	},
	{
		ID:     "faq-plus",
		Label:  "FAQ Plus",
		Detail: "FAQ Plus is a conversational Q&A bot providing an easy way to answer frequently asked questions by users.",
		Data:   SamplesArchiveURL,
	},
}

// SampleCatalog returns a copy of the bundled samples.
func SampleCatalog() []OptionItem {
	return append([]OptionItem(nil), sampleCatalog...)
}

// LookupSample returns the sample with the given ID.
func LookupSample(id string) (OptionItem, bool) {
	for _, s := range sampleCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return OptionItem{}, false
}

// BoolOptions are the choices offered for yes/no environment settings.
func BoolOptions() StaticOptions {
	return Strings("true", "false")
}
