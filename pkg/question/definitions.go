package question

// Each constructor returns a fresh value; callers may modify their copy
// without affecting other flows.

// SelectSolution picks the solution plugin. With a single solution the
// runner selects it without prompting.
func SelectSolution() Question {
	return Question{
		Type:             NodeSingleSelect,
		Name:             Solution,
		Title:            "Select a solution",
		StaticOptions:    Strings(SolutionDefault),
		SkipSingleOption: true,
	}
}

// ScratchOrSample chooses between an empty project and a sample.
func ScratchOrSample() Question {
	return Question{
		Type:             NodeSingleSelect,
		Name:             CreateFromScratch,
		Title:            "Teams Toolkit: Create a new Teams app",
		StaticOptions:    Items(ScratchOptionYes, ScratchOptionNo),
		Default:          ScratchOptionYes.ID,
		Placeholder:      "Select an option",
		SkipSingleOption: true,
	}
}

// SampleSelect picks a bundled sample. The whole OptionItem is stored so
// the archive URL reaches the generator.
func SampleSelect() Question {
	return Question{
		Type:          NodeSingleSelect,
		Name:          Samples,
		Title:         "Start from a sample",
		StaticOptions: Items(sampleCatalog...),
		Placeholder:   "Select a sample",
		ReturnObject:  true,
	}
}

func EnvNameQuestion() Question {
	return Question{
		Type:    NodeText,
		Name:    EnvName,
		Title:   "Environment Name",
		Default: "myenv",
	}
}

func EnvLocalQuestion() Question {
	return Question{
		Type:          NodeSingleSelect,
		Name:          EnvLocal,
		Title:         "Environment Is Local?",
		StaticOptions: BoolOptions(),
	}
}

func EnvSideLoadingQuestion() Question {
	return Question{
		Type:          NodeSingleSelect,
		Name:          EnvSideLoading,
		Title:         "Environment sideloading?",
		StaticOptions: BoolOptions(),
	}
}

// SelectEnv picks an existing environment. Its options come from the
// env-default resolver.
func SelectEnv() Question {
	return Question{
		Type:           NodeSingleSelect,
		Name:           EnvName,
		Title:          "Select an environment",
		StaticOptions:  Strings("default"),
		DynamicOptions: ResolverEnvDefault,
	}
}

// AppNameQuestion asks for the application name, validated against the
// chosen folder.
func AppNameQuestion() Question {
	return Question{
		Type:        NodeText,
		Name:        AppName,
		Title:       "Application name",
		Validation:  ValidatorAppName,
		Placeholder: "Application name",
	}
}

func RootFolder() Question {
	return Question{
		Type:  NodeFolder,
		Name:  Folder,
		Title: "Workspace folder",
	}
}

// CreateFlow is the "new project" wizard: solution, scratch or sample,
// sample choice (sample branch only), workspace folder, and app name
// (scratch branch only).
func CreateFlow() []Step {
	return []Step{
		{Question: SelectSolution()},
		{Question: ScratchOrSample()},
		{Question: SampleSelect(), When: &Condition{Name: CreateFromScratch, Equals: ScratchOptionNo.ID}},
		{Question: RootFolder()},
		{Question: AppNameQuestion(), When: &Condition{Name: CreateFromScratch, Equals: ScratchOptionYes.ID}},
	}
}

// EnvFlow collects the settings for a new environment.
func EnvFlow() []Step {
	return []Step{
		{Question: EnvNameQuestion()},
		{Question: EnvLocalQuestion()},
		{Question: EnvSideLoadingQuestion()},
	}
}

// SelectEnvFlow chooses an existing environment.
func SelectEnvFlow() []Step {
	return []Step{{Question: SelectEnv()}}
}
