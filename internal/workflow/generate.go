package workflow

import (
	"aistudio/internal/models"
	"aistudio/internal/notify"
)

// Generate runs the generation service for a composition. While a call for
// the same composition is in flight, further triggers are rejected so a
// double submit cannot commit two results.
func (e *Engine) Generate(comp models.Composition) (string, error) {
	if comp.Prompt == "" {
		e.notifier.Notify(notify.Error, "Please enter a prompt for the AI")
		return "", ErrPromptRequired
	}
	if len(comp.Platforms) == 0 {
		e.notifier.Notify(notify.Error, "Please select at least one platform")
		return "", ErrPlatformRequired
	}

	key := "gen\x00" + string(comp.ContentType) + "\x00" + comp.Prompt
	if !e.acquireGeneration(key) {
		return "", ErrGenerationInFlight
	}
	defer e.releaseGeneration(key)

	result, err := e.gen.Generate(comp)
	if err != nil {
		e.notifier.Notify(notify.Error, "Failed to generate content")
		return "", err
	}
	e.notifier.Notify(notify.Success, "Content generated successfully!")
	return result, nil
}

// ViralIdeas runs the idea generator for a topic, with the same
// single-flight rule as Generate.
func (e *Engine) ViralIdeas(topic string) (string, error) {
	if topic == "" {
		e.notifier.Notify(notify.Error, "Please enter a topic for viral content ideas")
		return "", ErrTopicRequired
	}

	key := "ideas\x00" + topic
	if !e.acquireGeneration(key) {
		return "", ErrGenerationInFlight
	}
	defer e.releaseGeneration(key)

	result, err := e.gen.ViralIdeas(topic)
	if err != nil {
		e.notifier.Notify(notify.Error, "Failed to generate ideas")
		return "", err
	}
	e.notifier.Notify(notify.Success, "Viral ideas generated successfully!")
	return result, nil
}

func (e *Engine) acquireGeneration(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.generating[key]; busy {
		return false
	}
	e.generating[key] = struct{}{}
	return true
}

func (e *Engine) releaseGeneration(key string) {
	e.mu.Lock()
	delete(e.generating, key)
	e.mu.Unlock()
}
