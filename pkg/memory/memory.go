// Package memory provides the tiered, markdown-file-backed memory store.
// Short-term tiers receive conversational notes and can be pruned with Forget;
// long-term tiers are append-only and only grow through Consolidate.
package memory
