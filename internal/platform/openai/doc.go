// Package openai provides an implementation of the generation.Generator
// interface for OpenAI-compatible chat completion APIs, built on the Eino
// chat model adapter. Setting a base URL points it at any compatible
// endpoint (Azure OpenAI proxies, local inference servers).
package openai
