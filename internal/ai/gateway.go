package ai

import "context"

// EmbeddingGateway binds a client to one embedding deployment. The vector
// dimension is fixed by the configured model.
type EmbeddingGateway struct {
	client *Client
	cfg    EmbeddingConfig
}

func NewEmbeddingGateway(client *Client, cfg EmbeddingConfig) *EmbeddingGateway {
	return &EmbeddingGateway{client: client, cfg: cfg}
}

func (g *EmbeddingGateway) Embed(ctx context.Context, text string) ([]float32, error) {
	return g.client.Embed(ctx, g.cfg, text)
}

func (g *EmbeddingGateway) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return g.client.EmbedBatch(ctx, g.cfg, texts)
}

// AnswerGateway binds a client to one chat-completion deployment.
type AnswerGateway struct {
	client *Client
	cfg    ChatConfig
}

func NewAnswerGateway(client *Client, cfg ChatConfig) *AnswerGateway {
	return &AnswerGateway{client: client, cfg: cfg}
}

func (g *AnswerGateway) Generate(ctx context.Context, messages []ChatMessage) (string, error) {
	return g.client.Complete(ctx, g.cfg, messages)
}
